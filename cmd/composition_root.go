package cmd

import (
	"strings"

	"movebox/internal/adapters/out/fcm"
	"movebox/internal/adapters/out/kafka"
	"movebox/internal/adapters/out/payment"
	"movebox/internal/adapters/out/postgres"
	"movebox/internal/adapters/out/postgres/userrepo"
	"movebox/internal/core/application/usecases/commands"
	"movebox/internal/core/application/usecases/queries"
	"movebox/internal/core/domain/model/kernel"
	"movebox/internal/core/ports"
	"movebox/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	logger     *zap.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
	emitter    ports.EventEmitter
	notifier   ports.NotificationDispatcher
	payment    ports.PaymentGateway
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *zap.Logger) CompositionRoot {
	writer := kafka.NewWriter(strings.Split(configs.KafkaBrokers, ","), configs.KafkaEventsTopic)

	tokens := userrepo.NewGormUserRepository(gormDB, noTracking{})
	notifier := fcm.NewDispatcher(nil, "", configs.FcmServerKey, tokens)

	return CompositionRoot{
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		emitter:    kafka.NewEventEmitter(writer),
		notifier:   notifier,
		payment:    payment.NewGateway(nil, configs.PaymentBaseURL, configs.PaymentAPIKey),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.emitter)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.crossUoWFactory(), c.payment, c.notifier, c.emitter)
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	return commands.NewCreateJobCommandHandler(c.crossUoWFactory(), c.emitter)
}

func (c *CompositionRoot) CreateAcceptJobCommandHandler() commands.AcceptJobCommandHandler {
	return commands.NewAcceptJobCommandHandler(c.crossUoWFactory(), c.orderUoWFactory(), c.notifier, c.emitter)
}

func (c *CompositionRoot) CreateUpdateJobStatusCommandHandler() commands.UpdateJobStatusCommandHandler {
	return commands.NewUpdateJobStatusCommandHandler(c.crossUoWFactory(), c.orderUoWFactory(), c.notifier, c.emitter)
}

func (c *CompositionRoot) CreateRequestPickupConfirmationCommandHandler() commands.RequestPickupConfirmationCommandHandler {
	return commands.NewRequestPickupConfirmationCommandHandler(c.crossUoWFactory(), c.notifier, c.emitter)
}

func (c *CompositionRoot) CreateConfirmPickupCommandHandler() commands.ConfirmPickupCommandHandler {
	return commands.NewConfirmPickupCommandHandler(c.crossUoWFactory(), c.orderUoWFactory(), c.notifier, c.emitter)
}

func (c *CompositionRoot) CreateRequestDeliveryConfirmationCommandHandler() commands.RequestDeliveryConfirmationCommandHandler {
	return commands.NewRequestDeliveryConfirmationCommandHandler(c.crossUoWFactory(), c.notifier, c.emitter)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.crossUoWFactory(), c.orderUoWFactory(), c.notifier, c.emitter)
}

func (c *CompositionRoot) CreateGetActiveOrderQueryHandler() queries.GetActiveOrderQueryHandler {
	return queries.NewGetActiveOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableJobsQueryHandler() queries.GetAvailableJobsQueryHandler {
	return queries.NewGetAvailableJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetJobsByMoverQueryHandler() queries.GetJobsByMoverQueryHandler {
	return queries.NewGetJobsByMoverQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetJobsByStudentQueryHandler() queries.GetJobsByStudentQueryHandler {
	return queries.NewGetJobsByStudentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetJobsByOrderQueryHandler() queries.GetJobsByOrderQueryHandler {
	return queries.NewGetJobsByOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.uowFactory, c.logger)
}

func (c *CompositionRoot) crossUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// noTracking satisfies the user repository's tracker for read-side use
// outside a unit of work, where nothing needs flushing on commit.
type noTracking struct{}

func (noTracking) TrackAggregate(kernel.UUID, any) {}
