package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the configuration for one service process.
type Config struct {
	ServiceName string
	Port        string

	DBHost     string
	DBUser     string
	DBPassword string
	DBPort     string
	DBName     string

	JWTKey    string
	SaltRound int

	// Base URL of the notification service, used by the transaction
	// service for fan-out. Empty disables fan-out.
	NotificationServiceURL string
}

// Load initializes configuration from environment variables or defaults.
// Each service passes its own name and default port.
func Load(serviceName, defaultPort string) *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	cfg := &Config{
		ServiceName: getEnv("SERVICE_NAME", serviceName),
		Port:        getEnv("PORT", defaultPort),

		DBHost:     getEnv("DB_HOST", ""),
		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", serviceName+".db"),

		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		NotificationServiceURL: getEnv("NOTIFICATION_SERVICE_URL", ""),
	}

	// Validate critical configuration
	if cfg.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if cfg.DBHost == "" {
		log.Printf("Warning: DB_HOST not set. Falling back to local SQLite file %s.", cfg.DBName)
	}

	return cfg
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
