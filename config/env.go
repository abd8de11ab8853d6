package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv            string
	Port              string
	DatabaseURL       string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSSLMode         string
	MigrationsDir     string
	RedisURL          string
	RedisAddr         string
	RedisPassword     string
	JWTSecret         string
	JWTExpiry         time.Duration
	SMTPHost          string
	SMTPPort          int
	SMTPUser          string
	SMTPPass          string
	SMTPFrom          string
	ContactEmail      string
	ContactRateLimit  int
	ContactRateWindow time.Duration
	DeliveryFee       string
	GuestCartTTL      time.Duration
	MenuCacheTTL      time.Duration
	CloudinaryURL     string
	CloudinaryName    string
	CloudinaryKey     string
	CloudinarySecret  string
	OriginURL         string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = FromEnv()

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

// FromEnv builds a Config from the current environment without touching
// AppConfig or any .env file.
func FromEnv() *Config {
	return &Config{
		AppEnv:            getEnv("APP_ENV", "development"),
		Port:              getEnv("APP_PORT", getEnv("PORT", "3000")),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBName:            getEnv("DB_NAME", "frydays"),
		DBSSLMode:         getEnv("DB_SSLMODE", "disable"),
		MigrationsDir:     getEnv("MIGRATIONS_DIR", "database/migration"),
		RedisURL:          os.Getenv("REDIS_URL"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		JWTSecret:         getEnv("JWT_SECRET", "secret"),
		JWTExpiry:         getDuration("JWT_EXPIRY", time.Hour),
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPPort:          getInt("SMTP_PORT", 587),
		SMTPUser:          os.Getenv("SMTP_USER"),
		SMTPPass:          os.Getenv("SMTP_PASS"),
		SMTPFrom:          os.Getenv("SMTP_FROM"),
		ContactEmail:      os.Getenv("CONTACT_EMAIL"),
		ContactRateLimit:  getInt("CONTACT_RATE_LIMIT", 3),
		ContactRateWindow: getDuration("CONTACT_RATE_WINDOW", time.Hour),
		DeliveryFee:       getEnv("DELIVERY_FEE", "5.00"),
		GuestCartTTL:      getDuration("GUEST_CART_TTL", 24*time.Hour),
		MenuCacheTTL:      getDuration("MENU_CACHE_TTL", 5*time.Minute),
		CloudinaryURL:     os.Getenv("CLOUDINARY_URL"),
		CloudinaryName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryKey:     os.Getenv("CLOUDINARY_API_KEY"),
		CloudinarySecret:  os.Getenv("CLOUDINARY_API_SECRET"),
		OriginURL:         os.Getenv("ORIGIN_URL"),
	}
}

// UseMemoryStore reports whether no durable database is configured.
func (c *Config) UseMemoryStore() bool {
	return c.DatabaseURL == "" && c.DBHost == ""
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
