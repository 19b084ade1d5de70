package seed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mrlokans/wayfarer/internal/auth"
	"github.com/mrlokans/wayfarer/internal/config"
	"github.com/mrlokans/wayfarer/internal/database"
	"github.com/mrlokans/wayfarer/internal/database/destinations"
	"github.com/mrlokans/wayfarer/internal/database/users"
	"github.com/mrlokans/wayfarer/internal/entities"
)

var demoSettings = config.Seed{
	DemoName:     "Demo Traveller",
	DemoEmail:    "demo@wayfarer.travel",
	DemoPassword: "wanderlust",
}

func setupSeeder(t *testing.T) (*Seeder, *destinations.Repository, *users.Repository) {
	t.Helper()

	db, err := database.NewDatabase(config.Database{
		URL:      filepath.Join(t.TempDir(), "seed.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	destinationRepo := destinations.NewRepository(db.DB)
	userRepo := users.NewRepository(db.DB)
	return NewSeeder(destinationRepo, userRepo, demoSettings, bcrypt.MinCost), destinationRepo, userRepo
}

func TestSeeder_Run(t *testing.T) {
	seeder, destinationRepo, userRepo := setupSeeder(t)
	ctx := context.Background()

	result, err := seeder.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, len(Destinations), result.DestinationsCreated)
	assert.True(t, result.DemoUserCreated)

	stored, err := destinationRepo.ListDestinations(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, len(Destinations))

	demo, err := userRepo.GetUserByEmail(ctx, "demo@wayfarer.travel")
	require.NoError(t, err)
	assert.True(t, auth.VerifyPassword("wanderlust", demo.PasswordHash))
}

func TestSeeder_Idempotent(t *testing.T) {
	seeder, destinationRepo, _ := setupSeeder(t)
	ctx := context.Background()

	_, err := seeder.Run(ctx)
	require.NoError(t, err)

	result, err := seeder.Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, result.DestinationsCreated)
	assert.False(t, result.DemoUserCreated)

	stored, err := destinationRepo.ListDestinations(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, len(Destinations))
}

func TestSeeder_FillsGaps(t *testing.T) {
	seeder, destinationRepo, _ := setupSeeder(t)
	ctx := context.Background()

	existing := Destinations[0]
	require.NoError(t, destinationRepo.CreateDestination(ctx, &existing))

	result, err := seeder.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(Destinations)-1, result.DestinationsCreated)
}

func TestSeeder_SkipsDemoUserWithoutEmail(t *testing.T) {
	seeder, _, _ := setupSeeder(t)
	seeder.demo = config.Seed{}

	result, err := seeder.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, result.DemoUserCreated)
}

func TestDestinations_UniqueNames(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range Destinations {
		assert.False(t, seen[d.Name], "duplicate destination %q", d.Name)
		seen[d.Name] = true
		assert.NotEmpty(t, d.Price)
		assert.Empty(t, d.ID, "IDs are assigned on insert")
	}
}

func TestSeeder_DoesNotMutateCatalogue(t *testing.T) {
	seeder, _, _ := setupSeeder(t)

	_, err := seeder.Run(context.Background())
	require.NoError(t, err)

	for _, d := range Destinations {
		assert.Equal(t, entities.Destination{}.ID, d.ID)
	}
}
