package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries every environment-driven setting. It is built once at
// startup and handed to the components that need it, instead of each
// package reading the environment on its own.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBTimezone string

	StripeSecretKey  string
	TransporterEmail string
	TransporterPass  string
	SMTPHost         string
	SMTPPort         int

	AllowedOrigins []string
	Port           string
	Production     bool
}

// Load reads .env (if present) and assembles the configuration with the
// same defaults the development environment expects.
func Load() Config {
	// 1) Load .env (if present)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		log.Printf("invalid SMTP_PORT, falling back to 587: %v", err)
		smtpPort = 587
	}

	return Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "stayvista"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBTimezone: getEnv("DB_TIMEZONE", "UTC"),

		StripeSecretKey:  os.Getenv("STRIPE_SECRET_KEY"),
		TransporterEmail: os.Getenv("TRANSPORTER_EMAIL"),
		TransporterPass:  os.Getenv("TRANSPORTER_PASS"),
		SMTPHost:         getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:         smtpPort,

		AllowedOrigins: splitOrigins(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:5174")),
		Port:           getEnv("PORT", "8000"),
		Production:     getEnv("APP_ENV", "development") == "production",
	}
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
