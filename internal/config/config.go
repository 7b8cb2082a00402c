package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	JwtSecret          string
	TokenTTL           time.Duration
	DbHost             string
	DbPort             string
	DbUser             string
	DbPassword         string
	DbName             string
	ServerPort         string
	IsProduction       bool
	Issuer             string
	LogLevel           string
	LogFormat          string
	PublicURL          string
	AllowedOrigins     []string
	AutoProvisionUsers bool
	SigningTokenTTL    time.Duration
	ReminderInterval   time.Duration
	DispatchWorkers    int
	DispatchQueueSize  int
	MinioEnabled       bool
	MinioEndpoint      string
	MinioAccessKey     string
	MinioSecretKey     string
	MinioUseSSL        bool
	MinioBucket        string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	TokenTTL = getDuration("TOKEN_TTL", 24*time.Hour)
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "docflow")
	ServerPort = getEnv("SERVER_PORT", "8080")
	IsProduction = getEnv("APP_ENV", "development") == "production"
	Issuer = getEnv("ISSUER", "docflow")
	LogLevel = getEnv("LOG_LEVEL", "info")
	LogFormat = getEnv("LOG_FORMAT", "json")
	PublicURL = strings.TrimRight(getEnv("PUBLIC_URL", "http://localhost:3000"), "/")
	AllowedOrigins = splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:,http://127.0.0.1:"))
	AutoProvisionUsers, _ = strconv.ParseBool(getEnv("AUTO_PROVISION_USERS", "true"))
	SigningTokenTTL = getDuration("SIGNING_TOKEN_TTL", 7*24*time.Hour)
	ReminderInterval = getDuration("REMINDER_INTERVAL", 24*time.Hour)
	DispatchWorkers = getInt("DISPATCH_WORKERS", 4)
	DispatchQueueSize = getInt("DISPATCH_QUEUE_SIZE", 256)

	MinioEnabled, _ = strconv.ParseBool(getEnv("MINIO_ENABLED", "false"))
	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minio")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minio123")
	MinioBucket = getEnv("MINIO_BUCKET", "docflow-archive")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
