package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
	EnvTest        Environment = "test"
)

var (
	ErrJWTSecretMissing  = errors.New("AUTH_JWT_SECRET is required in production")
	ErrJWTSecretTooShort = fmt.Errorf("AUTH_JWT_SECRET must be at least %d bytes", MinJWTSecretLength)
	ErrDatabaseURLEmpty  = errors.New("DATABASE_URL must not be empty")
)

type (
	Config struct {
		App
		HTTP
		Global
		Database
		Auth
		CSRF
		CORS
		Redis
		Kafka
		Tasks
		Digest
		Seed
	}

	App struct {
		Env Environment
	}
	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		URL      string // SQLite file path or postgres:// connection string
		LogLevel string // silent, error, warn, info
	}
	Auth struct {
		JWTSecret     string
		BcryptCost    int
		SecureCookies bool // Forced on in production
	}
	CSRF struct {
		Enabled bool
		Secret  string
	}
	CORS struct {
		AllowedOrigins []string
	}
	Redis struct {
		Addr            string // Empty disables the destinations cache
		Password        string
		DB              int
		DestinationsTTL time.Duration
	}
	Kafka struct {
		Brokers       []string // Empty disables event publishing
		BookingsTopic string
		ContactTopic  string
	}
	Tasks struct {
		Enabled      bool
		Workers      int
		DatabasePath string
		ReleaseAfter time.Duration
		CleanupEvery time.Duration
	}
	Digest struct {
		Enabled  bool
		Schedule string // Cron format: "0 8 * * *" = every day at 08:00
		OpsEmail string
	}
	Seed struct {
		RouteEnabled bool
		DemoName     string
		DemoEmail    string
		DemoPassword string
	}
)

// IsProduction reports whether the process runs with production settings.
func (c *Config) IsProduction() bool {
	return c.App.Env == EnvProduction
}

// CookiesSecure reports whether the session cookie must carry the Secure flag.
func (c *Config) CookiesSecure() bool {
	return c.IsProduction() || c.Auth.SecureCookies
}

// Validate checks settings that would make the server unsafe or unusable.
// Outside production an empty JWT secret is replaced by a random one so that
// local development works without extra setup.
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return ErrDatabaseURLEmpty
	}

	if c.Auth.JWTSecret == "" {
		if c.IsProduction() {
			return ErrJWTSecretMissing
		}
		secret, err := generateSecret()
		if err != nil {
			return fmt.Errorf("failed to generate JWT secret: %w", err)
		}
		c.Auth.JWTSecret = secret
		log.Printf("WARNING: AUTH_JWT_SECRET is not set, generated an ephemeral one. Sessions will not survive a restart.")
	}

	if len(c.Auth.JWTSecret) < MinJWTSecretLength {
		return ErrJWTSecretTooShort
	}

	return nil
}

func generateSecret() (string, error) {
	bytes := make([]byte, MinJWTSecretLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// splitList turns a comma-separated env value into a clean slice.
func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func NewConfig() *Config {
	// A missing .env file is normal outside local development
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("app_env", string(EnvDevelopment))
	v.SetDefault("port", 8080)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 5)
	v.SetDefault("database_url", DefaultDatabaseURL)
	v.SetDefault("database_log_level", "warn")

	// Auth defaults
	v.SetDefault("auth_jwt_secret", "")
	v.SetDefault("auth_bcrypt_cost", 12)
	v.SetDefault("auth_secure_cookies", false)

	v.SetDefault("csrf_enabled", false)
	v.SetDefault("csrf_secret", "")
	v.SetDefault("cors_allowed_origins", "")

	// Optional infrastructure, disabled when empty
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("destinations_cache_ttl", "10m")
	v.SetDefault("kafka_brokers", "")
	v.SetDefault("kafka_bookings_topic", "wayfarer.bookings")
	v.SetDefault("kafka_contact_topic", "wayfarer.contact")

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("tasks_database_path", DefaultTasksDatabasePath)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")

	v.SetDefault("digest_enabled", false)
	v.SetDefault("digest_schedule", "0 8 * * *")
	v.SetDefault("notify_ops_email", "ops@wayfarer.travel")

	v.SetDefault("seed_route_enabled", true)
	v.SetDefault("seed_demo_name", "Demo Traveller")
	v.SetDefault("seed_demo_email", "demo@wayfarer.travel")
	v.SetDefault("seed_demo_password", "wanderlust")

	return &Config{
		App: App{
			Env: Environment(strings.ToLower(v.GetString("APP_ENV"))),
		},
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			URL:      v.GetString("DATABASE_URL"),
			LogLevel: v.GetString("DATABASE_LOG_LEVEL"),
		},
		Auth: Auth{
			JWTSecret:     v.GetString("AUTH_JWT_SECRET"),
			BcryptCost:    v.GetInt("AUTH_BCRYPT_COST"),
			SecureCookies: v.GetBool("AUTH_SECURE_COOKIES"),
		},
		CSRF: CSRF{
			Enabled: v.GetBool("CSRF_ENABLED"),
			Secret:  v.GetString("CSRF_SECRET"),
		},
		CORS: CORS{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Redis: Redis{
			Addr:            v.GetString("REDIS_ADDR"),
			Password:        v.GetString("REDIS_PASSWORD"),
			DB:              v.GetInt("REDIS_DB"),
			DestinationsTTL: v.GetDuration("DESTINATIONS_CACHE_TTL"),
		},
		Kafka: Kafka{
			Brokers:       splitList(v.GetString("KAFKA_BROKERS")),
			BookingsTopic: v.GetString("KAFKA_BOOKINGS_TOPIC"),
			ContactTopic:  v.GetString("KAFKA_CONTACT_TOPIC"),
		},
		Tasks: Tasks{
			Enabled:      v.GetBool("TASKS_ENABLED"),
			Workers:      v.GetInt("TASK_WORKERS"),
			DatabasePath: v.GetString("TASKS_DATABASE_PATH"),
			ReleaseAfter: v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupEvery: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
		Digest: Digest{
			Enabled:  v.GetBool("DIGEST_ENABLED"),
			Schedule: v.GetString("DIGEST_SCHEDULE"),
			OpsEmail: v.GetString("NOTIFY_OPS_EMAIL"),
		},
		Seed: Seed{
			RouteEnabled: v.GetBool("SEED_ROUTE_ENABLED"),
			DemoName:     v.GetString("SEED_DEMO_NAME"),
			DemoEmail:    v.GetString("SEED_DEMO_EMAIL"),
			DemoPassword: v.GetString("SEED_DEMO_PASSWORD"),
		},
	}
}
