package entrypoint

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wayfarer/internal/auth"
	"github.com/mrlokans/wayfarer/internal/cache"
	"github.com/mrlokans/wayfarer/internal/config"
	"github.com/mrlokans/wayfarer/internal/database"
	"github.com/mrlokans/wayfarer/internal/database/bookings"
	"github.com/mrlokans/wayfarer/internal/database/contacts"
	"github.com/mrlokans/wayfarer/internal/database/destinations"
	"github.com/mrlokans/wayfarer/internal/database/users"
	"github.com/mrlokans/wayfarer/internal/events"
	http_controllers "github.com/mrlokans/wayfarer/internal/http"
	"github.com/mrlokans/wayfarer/internal/notifications"
	"github.com/mrlokans/wayfarer/internal/scheduler"
	"github.com/mrlokans/wayfarer/internal/seed"
	"github.com/mrlokans/wayfarer/internal/tasks"
)

// csrfKeyLength is the key size gorilla/csrf expects.
const csrfKeyLength = 32

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill -2 is SIGINT, plain kill sends SIGTERM. SIGKILL cannot be caught.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server Shutdown: %v", err)
	}

	// Background work stops after in-flight requests have finished enqueueing
	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Wayfarer v%s (%s)", version, cfg.App.Env)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	userRepo := users.NewRepository(db.DB)
	destinationRepo := destinations.NewRepository(db.DB)
	bookingRepo := bookings.NewRepository(db.DB)
	contactRepo := contacts.NewRepository(db.DB)

	healthChecks := map[string]http_controllers.Pinger{"database": db}

	// Destination reads go through Redis when it is configured
	var destinationReader http_controllers.DestinationReader = destinationRepo
	var seedCache http_controllers.CacheInvalidator
	if cfg.Redis.Addr != "" {
		store := cache.NewRedisStore(cfg.Redis)
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("Error closing redis client: %v", err)
			}
		}()
		cached := cache.NewCachedDestinations(destinationRepo, store, cfg.Redis.DestinationsTTL)
		destinationReader = cached
		seedCache = cached
		healthChecks["redis"] = store
		log.Printf("Destination cache enabled (redis %s, ttl %v)", cfg.Redis.Addr, cfg.Redis.DestinationsTTL)
	}

	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.Kafka)
		log.Printf("Event publishing enabled (kafka %v)", cfg.Kafka.Brokers)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Printf("Error closing event publisher: %v", err)
		}
	}()

	mailer := notifications.LogMailer{From: cfg.Digest.OpsEmail}

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var queue notifications.Enqueuer
	var taskCtxCancel context.CancelFunc
	var digestScheduler *scheduler.DigestScheduler
	if cfg.Tasks.Enabled {
		taskClient, err = tasks.NewClient(tasks.ConfigFrom(cfg.Tasks))
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewSendBookingConfirmationQueue(bookingRepo, mailer),
			tasks.NewNotifyContactMessageQueue(contactRepo, mailer, cfg.Digest.OpsEmail),
			tasks.NewBookingDigestQueue(bookingRepo, contactRepo, mailer, cfg.Digest.OpsEmail),
		)

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)

		queue = taskClient
		healthChecks["tasks"] = taskClient

		if cfg.Digest.Enabled {
			digestScheduler = scheduler.NewDigestScheduler(taskClient, cfg.Digest.Schedule)
			if err := digestScheduler.Start(taskCtx); err != nil {
				log.Fatalf("Failed to start digest scheduler: %v", err)
			}
		}
	} else if cfg.Digest.Enabled {
		log.Printf("WARNING: DIGEST_ENABLED requires TASKS_ENABLED, the daily digest is disabled")
	}

	dispatcher := notifications.NewDispatcher(publisher, queue)

	tokens, err := auth.NewTokenService(cfg.Auth.JWTSecret)
	if err != nil {
		log.Fatalf("Failed to initialize token service: %v", err)
	}
	cookies := auth.NewCookieAdapter(cfg.CookiesSecure(), tokens.TTL())
	authService := auth.NewService(userRepo, tokens, cfg.Auth)

	var csrfSecret []byte
	if cfg.CSRF.Enabled {
		csrfSecret, err = loadCSRFSecret(cfg.CSRF.Secret)
		if err != nil {
			log.Fatalf("Invalid CSRF_SECRET: %v", err)
		}
	}

	routerCfg := http_controllers.RouterConfig{
		AuthController:     auth.NewAuthController(authService, cookies),
		Tokens:             tokens,
		Cookies:            cookies,
		SecureCookies:      cfg.CookiesSecure(),
		CSRFSecret:         csrfSecret,
		CORSAllowedOrigins: cfg.CORS.AllowedOrigins,
		Destinations:       destinationReader,
		Bookings:           bookingRepo,
		Contacts:           contactRepo,
		Notifier:           dispatcher,
		HealthChecks:       healthChecks,
		Version:            version,
	}
	if cfg.Seed.RouteEnabled {
		routerCfg.Seeder = seed.NewSeeder(destinationRepo, userRepo, cfg.Seed, cfg.Auth.BcryptCost)
		routerCfg.SeedCache = seedCache
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if digestScheduler != nil {
			digestScheduler.Stop()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}

// loadCSRFSecret accepts a hex-encoded or raw 32-byte key. An empty value
// generates a key that lasts for the life of the process.
func loadCSRFSecret(configured string) ([]byte, error) {
	if configured == "" {
		secret := make([]byte, csrfKeyLength)
		if _, err := rand.Read(secret); err != nil {
			return nil, err
		}
		log.Printf("Generated CSRF secret (set CSRF_SECRET to persist)")
		return secret, nil
	}

	secret, err := hex.DecodeString(configured)
	if err != nil {
		// Not hex, use as raw bytes
		secret = []byte(configured)
	}
	if len(secret) != csrfKeyLength {
		return nil, fmt.Errorf("key must be %d bytes, got %d", csrfKeyLength, len(secret))
	}
	return secret, nil
}
