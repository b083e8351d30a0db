package config

import (
	"os"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
}

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	CORSOrigins string

	// local writes under UploadDir and serves from PublicURL/uploads/tours,
	// r2 uploads to the bucket in R2Config
	StorageDriver string
	UploadDir     string
	PublicURL     string
	R2            R2Config

	Email struct {
		ResendAPIKey string
		FromAddress  string
		FromName     string
	}

	LogLevel  string
	LogFormat string
}

func LoadConfig() *Config {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		CORSOrigins:   getEnv("CORS_ORIGINS", "https://daudtravel.com, https://www.daudtravel.com, http://localhost:3000"),
		StorageDriver: getEnv("STORAGE_DRIVER", "local"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads/tours"),
		PublicURL:     getEnv("PUBLIC_URL", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
	}

	cfg.R2.AccountID = os.Getenv("R2_ACCOUNT_ID")
	cfg.R2.AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.R2.SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.R2.Bucket = os.Getenv("R2_BUCKET")
	cfg.R2.PublicURL = os.Getenv("R2_PUBLIC_URL")

	cfg.Email.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = getEnv("EMAIL_FROM_ADDRESS", "noreply@daudtravel.com")
	cfg.Email.FromName = getEnv("EMAIL_FROM_NAME", "Daud Travel")

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
