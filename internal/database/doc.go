// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup (SQLite or Postgres), migrations
//	├── errors.go        # ErrNotFound / ErrDuplicate and gorm error translation
//	├── users/           # User accounts
//	├── destinations/    # Destination catalogue
//	├── bookings/        # Trip bookings
//	└── contacts/        # Contact form messages
//
// # Using Sub-packages
//
//	db, err := database.NewDatabase(cfg.Database)
//
//	usersRepo := users.NewRepository(db.DB)
//	bookingsRepo := bookings.NewRepository(db.DB)
//
//	user, err := usersRepo.GetUserByEmail(ctx, "a@x.com")
//	if errors.Is(err, database.ErrNotFound) { ... }
//
// The *gorm.DB handle is created once by the entrypoint and injected into
// every repository. Repositories never keep package-level state.
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Return errors through database.Translate
//  5. Add a compile-time interface check in internal/interfaces
package database
