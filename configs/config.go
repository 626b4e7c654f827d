package configs

import (
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string        `validate:"required"`
	Port      string        `validate:"required,numeric"`
	JWTSecret string        `validate:"required,min=8"`
	JWTTTL    time.Duration `validate:"required"`

	// optional redis cache for the menu catalog; empty = disabled
	RedisAddr string

	AdminEmail    string `validate:"omitempty,email"`
	AdminPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg := &Config{
		DBSource:      getEnv("DB_SOURCE", "storefront.db"),
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme-dev-secret"),
		JWTTTL:        24 * time.Hour,
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
