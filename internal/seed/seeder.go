// Package seed populates the catalogue and a demo account. Seeding is
// idempotent: destinations are matched by name, the demo user by email.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/mrlokans/wayfarer/internal/auth"
	"github.com/mrlokans/wayfarer/internal/config"
	"github.com/mrlokans/wayfarer/internal/database"
	"github.com/mrlokans/wayfarer/internal/entities"
)

// DestinationStore provides the destination operations the seeder needs.
type DestinationStore interface {
	GetDestinationByName(ctx context.Context, name string) (*entities.Destination, error)
	CreateDestination(ctx context.Context, destination *entities.Destination) error
}

// UserStore provides the user operations the seeder needs.
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
	CreateUser(ctx context.Context, user *entities.User) error
}

// Result reports what a seeding run inserted.
type Result struct {
	DestinationsCreated int  `json:"destinationsCreated"`
	DemoUserCreated     bool `json:"demoUserCreated"`
}

// Seeder inserts missing catalogue entries and the demo user.
type Seeder struct {
	destinations DestinationStore
	users        UserStore
	demo         config.Seed
	bcryptCost   int
	catalogue    []entities.Destination
}

func NewSeeder(destinations DestinationStore, users UserStore, demo config.Seed, bcryptCost int) *Seeder {
	return &Seeder{
		destinations: destinations,
		users:        users,
		demo:         demo,
		bcryptCost:   bcryptCost,
		catalogue:    Destinations,
	}
}

// Run seeds the database. Re-running it inserts nothing new.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	var result Result

	for _, template := range s.catalogue {
		created, err := s.ensureDestination(ctx, template)
		if err != nil {
			return result, err
		}
		if created {
			result.DestinationsCreated++
		}
	}

	created, err := s.ensureDemoUser(ctx)
	if err != nil {
		return result, err
	}
	result.DemoUserCreated = created

	log.Printf("Seed complete: %d destinations created, demo user created: %v",
		result.DestinationsCreated, result.DemoUserCreated)
	return result, nil
}

func (s *Seeder) ensureDestination(ctx context.Context, template entities.Destination) (bool, error) {
	_, err := s.destinations.GetDestinationByName(ctx, template.Name)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return false, fmt.Errorf("failed to look up destination %q: %w", template.Name, err)
	}

	destination := template
	if err := s.destinations.CreateDestination(ctx, &destination); err != nil {
		// A concurrent seed inserted it first
		if errors.Is(err, database.ErrDuplicate) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create destination %q: %w", template.Name, err)
	}
	return true, nil
}

func (s *Seeder) ensureDemoUser(ctx context.Context) (bool, error) {
	if s.demo.DemoEmail == "" {
		return false, nil
	}

	_, err := s.users.GetUserByEmail(ctx, s.demo.DemoEmail)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return false, fmt.Errorf("failed to look up demo user: %w", err)
	}

	hash, err := auth.HashPassword(s.demo.DemoPassword, s.bcryptCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash demo password: %w", err)
	}

	user := &entities.User{
		Name:         s.demo.DemoName,
		Email:        s.demo.DemoEmail,
		PasswordHash: hash,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create demo user: %w", err)
	}
	return true, nil
}
