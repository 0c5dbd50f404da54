package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	JWTSecret        string
	PostgresHost     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresPort     string
	SQLitePath       string
}

// UsePostgres POSTGRES_HOSTが設定されている場合はPostgreSQLを使用
func (c *Config) UsePostgres() bool {
	return c.PostgresHost != ""
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using environment variables")
	}

	cfg := &Config{
		Port:             os.Getenv("PORT"),
		JWTSecret:        resolveSecret("JWT_SECRET"),
		PostgresHost:     resolveSecret("POSTGRES_HOST"),
		PostgresUser:     resolveSecret("POSTGRES_USER"),
		PostgresPassword: resolveSecret("POSTGRES_PASSWORD"),
		PostgresDB:       resolveSecret("POSTGRES_DB"),
		PostgresPort:     os.Getenv("POSTGRES_PORT"),
		SQLitePath:       os.Getenv("SQLITE_DB_LOCATION"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.PostgresPort == "" {
		cfg.PostgresPort = "5432"
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "todo.db"
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET or JWT_SECRET_FILE must be set")
	}

	return cfg, nil
}

// resolveSecret 環境変数を直接読み、なければ<NAME>_FILEのファイル内容を読む
func resolveSecret(name string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	path := os.Getenv(name + "_FILE")
	if path == "" {
		return ""
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Failed to read %s_FILE: %v", name, err)
		return ""
	}
	return strings.TrimSpace(string(contents))
}
