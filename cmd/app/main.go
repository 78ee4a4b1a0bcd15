package main

import (
	"fmt"
	nethttp "net/http"
	"os"

	"movebox/cmd"
	movehttp "movebox/internal/adapters/in/http"
	"movebox/internal/adapters/out/postgres/credittaskrepo"
	"movebox/internal/adapters/out/postgres/jobrepo"
	"movebox/internal/adapters/out/postgres/orderrepo"
	"movebox/internal/adapters/out/postgres/userrepo"
	"movebox/internal/generated/servers"
	"movebox/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	zapLogger := logger.New()
	defer func() { _ = zapLogger.Sync() }()

	configs := getConfigs(zapLogger)

	gormDB, err := openDatabase(configs)
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}

	app := cmd.NewCompositionRoot(configs, gormDB, zapLogger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		zapLogger.Fatal("failed to start scheduled jobs", zap.Error(err))
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs(zapLogger *zap.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		zapLogger.Info("no .env file, using process environment")
	}

	return cmd.Config{
		HTTPPort:         os.Getenv("HTTP_PORT"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           os.Getenv("DB_PORT"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBSslMode:        os.Getenv("DB_SSLMODE"),
		KafkaBrokers:     os.Getenv("KAFKA_BROKERS"),
		KafkaEventsTopic: os.Getenv("KAFKA_EVENTS_TOPIC"),
		FcmServerKey:     os.Getenv("FCM_SERVER_KEY"),
		PaymentBaseURL:   os.Getenv("PAYMENT_BASE_URL"),
		PaymentAPIKey:    os.Getenv("PAYMENT_API_KEY"),
	}
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&jobrepo.JobDTO{},
		&userrepo.UserDTO{},
		&credittaskrepo.CreditTaskDTO{},
	)
	if err != nil {
		return nil, err
	}

	return gormDB, nil
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := movehttp.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateCreateJobCommandHandler(),
		app.CreateAcceptJobCommandHandler(),
		app.CreateUpdateJobStatusCommandHandler(),
		app.CreateRequestPickupConfirmationCommandHandler(),
		app.CreateConfirmPickupCommandHandler(),
		app.CreateRequestDeliveryConfirmationCommandHandler(),
		app.CreateConfirmDeliveryCommandHandler(),
		app.CreateGetActiveOrderQueryHandler(),
		app.CreateGetAvailableJobsQueryHandler(),
		app.CreateGetJobsByMoverQueryHandler(),
		app.CreateGetJobsByStudentQueryHandler(),
		app.CreateGetJobsByOrderQueryHandler(),
	)

	e := echo.New()
	e.Logger.SetLevel(log.INFO)
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
