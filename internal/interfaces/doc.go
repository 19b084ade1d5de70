// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - auth.UserStore: Account lookup and creation (internal/auth/service.go)
//   - http.DestinationReader: Catalogue reads (internal/http/stores.go)
//   - http.BookingStore: Booking creation and listing (internal/http/stores.go)
//   - http.ContactStore: Contact form persistence (internal/http/stores.go)
//   - seed.DestinationStore, seed.UserStore: Seeding (internal/seed/seeder.go)
//
// ## Session Interfaces
//
//   - auth.TokenIssuer, auth.TokenVerifier: JWT issue and verify (internal/auth)
//
// ## Infrastructure Interfaces
//
//   - cache.Store: Byte cache with TTL, implemented by Redis (internal/cache/redis.go)
//   - events.Publisher: Domain events, implemented by Kafka (internal/events/events.go)
//   - notifications.Enqueuer, scheduler.Enqueuer: Background task submission
//   - tasks.Mailer: Outgoing email (internal/tasks/mailer.go)
//   - http.Pinger: Health check dependency (internal/http/stores.go)
//
// # Adding a New Background Task
//
//  1. Define the task type in internal/tasks/ with a Config() method
//
//     type RemindDepartureTask struct {
//         BookingID string `json:"booking_id"`
//     }
//
//     func (t RemindDepartureTask) Config() backlite.QueueConfig
//
//  2. Write a processor and a NewXxxQueue constructor next to it
//
//  3. Register the queue in entrypoint.go
//
// # Adding a New Database Domain
//
//  1. Create sub-package: internal/database/reviews/
//
//  2. Define repository:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Implement interface methods, translating errors with database.Translate
//
//  4. Add compile-time check in checks.go:
//
//     var _ http.ReviewStore = (*reviews.Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
