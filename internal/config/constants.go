package config

import "time"

const (
	// DefaultDatabaseURL is the default database location (a SQLite file path).
	DefaultDatabaseURL = "./wayfarer.db"

	// DefaultTasksDatabasePath is where the background task queue keeps its SQLite file.
	DefaultTasksDatabasePath = "./wayfarer-tasks.db"

	// MinJWTSecretLength is the minimum accepted signing key length in bytes.
	MinJWTSecretLength = 32

	// SessionTokenTTL is the lifetime of a session token and its cookie.
	SessionTokenTTL = 7 * 24 * time.Hour
)
