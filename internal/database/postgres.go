package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/KirkDiggler/fitna/internal/repositories/player"
	"github.com/KirkDiggler/fitna/internal/repositories/question"
	"github.com/KirkDiggler/fitna/internal/repositories/room"
)

// PostgresConfig holds connection settings for PostgreSQL
type PostgresConfig struct {
	DSN string

	// Verbose logs every statement
	Verbose bool
}

// ConnectGORM opens a lib/pq connection and wraps it in gorm
func ConnectGORM(ctx context.Context, cfg *PostgresConfig) (*gorm.DB, error) {
	if cfg == nil || cfg.DSN == "" {
		return nil, fmt.Errorf("postgres DSN cannot be empty")
	}

	sqlDB, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db, err := OpenGORM(sqlDB, cfg.Verbose)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// OpenGORM wraps an existing connection pool
func OpenGORM(sqlDB *sql.DB, verbose bool) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	}
	if verbose {
		gormConfig.Logger = logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Info,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		)
	}

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the rooms, players and questions tables
func Migrate(db *gorm.DB) error {
	if err := room.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate rooms: %w", err)
	}
	if err := player.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate players: %w", err)
	}
	if err := question.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate questions: %w", err)
	}
	return nil
}
