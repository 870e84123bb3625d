package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DBType         string
	PostgresURL    string
	MongoURL       string
	CategoriesPath string
	AllowedOrigins []string
	LogLevel       string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:           os.Getenv("PORT"),
		DBType:         os.Getenv("DB_TYPE"),
		PostgresURL:    os.Getenv("POSTGRES_URL"),
		MongoURL:       os.Getenv("MONGO_URL"),
		CategoriesPath: os.Getenv("CATEGORIES_PATH"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
	}
	if cfg.Port == "" {
		cfg.Port = "8081"
	}
	if cfg.DBType == "" {
		cfg.DBType = "postgres"
	}
	if cfg.CategoriesPath == "" {
		cfg.CategoriesPath = "categories.json"
	}
	for _, origin := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}
	return cfg
}
