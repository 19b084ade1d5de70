package destinations

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/wayfarer/internal/config"
	"github.com/mrlokans/wayfarer/internal/database"
	"github.com/mrlokans/wayfarer/internal/entities"
)

func setupTestDB(t *testing.T) *Repository {
	t.Helper()

	db, err := database.NewDatabase(config.Database{
		URL:      filepath.Join(t.TempDir(), "destinations.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db.DB)
}

func TestRepository_ListDestinations_Empty(t *testing.T) {
	repo := setupTestDB(t)

	destinations, err := repo.ListDestinations(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, destinations)
	assert.Empty(t, destinations)
}

func TestRepository_ListDestinations_OrderedByName(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	for _, name := range []string{"Kyoto", "Bali", "Reykjavik"} {
		require.NoError(t, repo.CreateDestination(ctx, &entities.Destination{Name: name, Price: "From $999"}))
	}

	destinations, err := repo.ListDestinations(ctx)
	require.NoError(t, err)
	require.Len(t, destinations, 3)
	assert.Equal(t, "Bali", destinations[0].Name)
	assert.Equal(t, "Kyoto", destinations[1].Name)
	assert.Equal(t, "Reykjavik", destinations[2].Name)
}

func TestRepository_GetDestination(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	created := &entities.Destination{Name: "Santorini", Description: "Whitewashed cliffs"}
	require.NoError(t, repo.CreateDestination(ctx, created))

	byID, err := repo.GetDestinationByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Santorini", byID.Name)

	byName, err := repo.GetDestinationByName(ctx, "Santorini")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	_, err = repo.GetDestinationByID(ctx, "missing")
	assert.ErrorIs(t, err, database.ErrNotFound)

	_, err = repo.GetDestinationByName(ctx, "Atlantis")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestRepository_CreateDestination_DuplicateName(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateDestination(ctx, &entities.Destination{Name: "Bali"}))

	err := repo.CreateDestination(ctx, &entities.Destination{Name: "Bali"})
	assert.ErrorIs(t, err, database.ErrDuplicate)
}
