package database

import (
	"context"
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/wayfarer/internal/config"
	"github.com/mrlokans/wayfarer/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the configured database, migrates the schema and returns
// a handle that is safe for concurrent use. A postgres:// URL selects the
// Postgres driver, anything else is treated as a SQLite file path.
func NewDatabase(cfg config.Database) (*Database, error) {
	db, err := gorm.Open(dialector(cfg.URL), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel(cfg.LogLevel)),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.User{},
		&entities.Destination{},
		&entities.Booking{},
		&entities.ContactMessage{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully (%s)", driverName(cfg.URL))

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks that the underlying connection pool can reach the database.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func isPostgresURL(url string) bool {
	return strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
}

func dialector(url string) gorm.Dialector {
	if isPostgresURL(url) {
		return postgres.Open(url)
	}
	return sqlite.Open(url)
}

func driverName(url string) string {
	if isPostgresURL(url) {
		return "postgres"
	}
	return "sqlite: " + url
}

func logLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
