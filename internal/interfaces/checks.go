package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/wayfarer/internal/auth"
	"github.com/mrlokans/wayfarer/internal/cache"
	"github.com/mrlokans/wayfarer/internal/database"
	"github.com/mrlokans/wayfarer/internal/database/bookings"
	"github.com/mrlokans/wayfarer/internal/database/contacts"
	"github.com/mrlokans/wayfarer/internal/database/destinations"
	"github.com/mrlokans/wayfarer/internal/database/users"
	"github.com/mrlokans/wayfarer/internal/events"
	"github.com/mrlokans/wayfarer/internal/http"
	"github.com/mrlokans/wayfarer/internal/notifications"
	"github.com/mrlokans/wayfarer/internal/scheduler"
	"github.com/mrlokans/wayfarer/internal/seed"
	"github.com/mrlokans/wayfarer/internal/tasks"
)

// =============================================================================
// Authentication
// =============================================================================

var _ auth.UserStore = (*users.Repository)(nil)
var _ auth.TokenIssuer = (*auth.TokenService)(nil)
var _ auth.TokenVerifier = (*auth.TokenService)(nil)

// =============================================================================
// Data Access Layer
// =============================================================================

// DestinationReader implementations
var _ http.DestinationReader = (*destinations.Repository)(nil)
var _ http.DestinationReader = (*cache.CachedDestinations)(nil)
var _ cache.DestinationSource = (*destinations.Repository)(nil)

var _ http.BookingStore = (*bookings.Repository)(nil)
var _ http.ContactStore = (*contacts.Repository)(nil)
var _ http.CacheInvalidator = (*cache.CachedDestinations)(nil)
var _ http.Seeder = (*seed.Seeder)(nil)

var _ seed.DestinationStore = (*destinations.Repository)(nil)
var _ seed.UserStore = (*users.Repository)(nil)

// Health checks
var _ http.Pinger = (*database.Database)(nil)
var _ http.Pinger = (*cache.RedisStore)(nil)
var _ http.Pinger = (*tasks.Client)(nil)

// =============================================================================
// Infrastructure
// =============================================================================

var _ cache.Store = (*cache.RedisStore)(nil)
var _ events.Publisher = (*events.KafkaPublisher)(nil)
var _ events.Publisher = events.NopPublisher{}
var _ http.Notifier = (*notifications.Dispatcher)(nil)

// =============================================================================
// Background Tasks
// =============================================================================

var _ notifications.Enqueuer = (*tasks.Client)(nil)
var _ scheduler.Enqueuer = (*tasks.Client)(nil)
var _ tasks.Mailer = notifications.LogMailer{}
var _ tasks.BookingGetter = (*bookings.Repository)(nil)
var _ tasks.BookingCounter = (*bookings.Repository)(nil)
var _ tasks.ContactMessageGetter = (*contacts.Repository)(nil)
var _ tasks.UnreadCounter = (*contacts.Repository)(nil)
