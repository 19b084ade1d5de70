package tasks

import (
	"time"

	"github.com/mrlokans/wayfarer/internal/config"
)

// Config holds configuration for the task queue system.
type Config struct {
	// DatabasePath is the SQLite file backing the queue, separate from the main database.
	DatabasePath string

	// Workers is the number of concurrent task workers. Default: 2
	Workers int

	// ReleaseAfter is when stuck tasks are released back to queue. Default: 15m
	ReleaseAfter time.Duration

	// CleanupInterval is how often to clean up completed tasks. Default: 1h
	CleanupInterval time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DatabasePath:    config.DefaultTasksDatabasePath,
		Workers:         2,
		ReleaseAfter:    15 * time.Minute,
		CleanupInterval: 1 * time.Hour,
	}
}

// ConfigFrom fills a Config from application settings, keeping defaults for
// unset values.
func ConfigFrom(settings config.Tasks) Config {
	cfg := DefaultConfig()
	if settings.DatabasePath != "" {
		cfg.DatabasePath = settings.DatabasePath
	}
	if settings.Workers > 0 {
		cfg.Workers = settings.Workers
	}
	if settings.ReleaseAfter > 0 {
		cfg.ReleaseAfter = settings.ReleaseAfter
	}
	if settings.CleanupEvery > 0 {
		cfg.CleanupInterval = settings.CleanupEvery
	}
	return cfg
}
