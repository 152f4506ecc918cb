package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Midtrans MidtransConfig
	Churn    ChurnConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	DashboardURL       string
	Environment        string
	LogFilePath        string
	AlertLogFilePath   string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	JwtSecret          string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type MidtransConfig struct {
	ServerKey    string
	IsProduction bool
}

type ChurnConfig struct {
	BatchWorkers           int
	EvaluationLookbackDays int
	PredictionTopic        string
	SummaryCacheTTLSeconds int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			DashboardURL:       getEnv("DASHBOARD_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			AlertLogFilePath:   getEnv("ALERT_LOG_FILE_PATH", "logs/alerts.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			JwtSecret:          getEnv("JWT_SECRET", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "GymRetention"),
		},
		Midtrans: MidtransConfig{
			ServerKey:    getEnv("MIDTRANS_SERVER_KEY", ""),
			IsProduction: getEnv("MIDTRANS_ENV", "sandbox") == "production",
		},
		Churn: ChurnConfig{
			BatchWorkers:           getEnvAsInt("CHURN_BATCH_WORKERS", 4),
			EvaluationLookbackDays: getEnvAsInt("CHURN_EVALUATION_LOOKBACK_DAYS", 30),
			PredictionTopic:        getEnv("CHURN_PREDICTION_TOPIC", "CHURN_PREDICTION_CREATED"),
			SummaryCacheTTLSeconds: getEnvAsInt("CHURN_SUMMARY_CACHE_TTL", 60),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
