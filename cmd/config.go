package cmd

type Config struct {
	HTTPPort         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	KafkaBrokers     string
	KafkaEventsTopic string
	FcmServerKey     string
	PaymentBaseURL   string
	PaymentAPIKey    string
}
