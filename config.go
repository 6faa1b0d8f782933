package main

import (
	"fmt"
	"os"

	"github.com/Kristian-01/nine27-mobile/database"
)

type Config struct {
	Env       string
	Port      string
	Database  database.Config
	RedisAddr string
	JWTSecret string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Env:  getEnv("APP_ENV", "development"),
		Port: getEnv("PORT", "8080"),
		Database: database.Config{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnv("POSTGRES_PORT", "5432"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
			TimeZone: getEnv("POSTGRES_TIMEZONE", "UTC"),
		},
		RedisAddr: getEnv("REDIS_ADDR", ""),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}

	if cfg.Database.User == "" || cfg.Database.Password == "" || cfg.Database.DBName == "" {
		return nil, fmt.Errorf("database config incomplete")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
