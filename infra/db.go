package infra

import (
	"fmt"
	"log"
	"time"

	"gin-todo/config"
	"gin-todo/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	connectTimeout = 10 * time.Second
	connectBackoff = 500 * time.Millisecond
	maxOpenConns   = 5
)

// SetupDB 設定に応じてPostgreSQLまたはSQLiteへ接続する
// PostgreSQLは起動待ちを考慮してconnectTimeoutまでリトライする
func SetupDB(cfg *config.Config) (*gorm.DB, error) {
	if cfg.UsePostgres() {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.PostgresHost,
			cfg.PostgresUser,
			cfg.PostgresPassword,
			cfg.PostgresDB,
			cfg.PostgresPort,
		)

		var db *gorm.DB
		var err error
		deadline := time.Now().Add(connectTimeout)
		for {
			db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
			if err == nil {
				break
			}
			if time.Now().After(deadline) {
				return nil, fmt.Errorf("failed to connect to postgres at %s: %w", cfg.PostgresHost, err)
			}
			log.Printf("Waiting for postgres at %s: %v", cfg.PostgresHost, err)
			time.Sleep(connectBackoff)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(maxOpenConns)

		log.Printf("Connected to postgres db at host %s", cfg.PostgresHost)
		return db, nil
	}

	db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db at %s: %w", cfg.SQLitePath, err)
	}
	log.Printf("Using sqlite database at %s", cfg.SQLitePath)
	return db, nil
}

// Migrate テーブル作成と不足カラムの追加のみ行う（既存データは壊さない）
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Item{})
}

// CloseDB コネクションプールを解放する（未接続でも安全）
func CloseDB(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Failed to close database: %v", err)
	}
}
