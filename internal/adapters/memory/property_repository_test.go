package memory_adapter

import (
	"context"
	"sort"
	"testing"

	"github.com/ank17jaat/SpaceMate/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPropertyRepository_FindReturnsSeededCatalog(t *testing.T) {
	repo := NewMemoryPropertyRepository(SeedProperties())

	properties, err := repo.Find(context.Background(), domain.SearchFilters{})

	require.NoError(t, err)
	assert.Len(t, properties, 8)
	// featured всегда впереди
	assert.True(t, properties[0].Featured)
}

func TestMemoryPropertyRepository_FindByID(t *testing.T) {
	seed := SeedProperties()
	repo := NewMemoryPropertyRepository(seed)

	found, err := repo.FindByID(context.Background(), seed[0].ID)
	require.NoError(t, err)
	assert.Equal(t, seed[0].Name, found.Name)

	_, err = repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestMemoryPropertyRepository_CreateAndFindByOwner(t *testing.T) {
	repo := NewMemoryPropertyRepository(SeedProperties())

	property := domain.NewProperty("owner-1", "My Hotel", domain.PropertyTypeHotel, "", "Main St", "Boston", 150)
	require.NoError(t, repo.Create(context.Background(), property))

	owned, err := repo.FindByOwner(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "My Hotel", owned[0].Name)

	// Seed-данные не имеют владельца и в выборку не попадают
	none, err := repo.FindByOwner(context.Background(), "someone-else")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryPropertyRepository_Delete(t *testing.T) {
	seed := SeedProperties()
	repo := NewMemoryPropertyRepository(seed)

	require.NoError(t, repo.Delete(context.Background(), seed[0].ID))
	assert.ErrorIs(t, repo.Delete(context.Background(), seed[0].ID), domain.ErrPropertyNotFound)

	properties, err := repo.Find(context.Background(), domain.SearchFilters{})
	require.NoError(t, err)
	assert.Len(t, properties, 7)
}

func TestMemoryPropertyRepository_ListAmenitiesIsDistinctAndSorted(t *testing.T) {
	repo := NewMemoryPropertyRepository(SeedProperties())

	amenities, err := repo.ListAmenities(context.Background())

	require.NoError(t, err)
	assert.True(t, sort.StringsAreSorted(amenities))

	seen := make(map[string]int)
	for _, a := range amenities {
		seen[a]++
	}
	for amenity, count := range seen {
		assert.Equalf(t, 1, count, "amenity %q duplicated", amenity)
	}
	assert.Contains(t, amenities, "WiFi")
	assert.Contains(t, amenities, "Meeting Rooms")
}

func TestMemoryPropertyRepository_FindDoesNotExposeInternalState(t *testing.T) {
	repo := NewMemoryPropertyRepository(SeedProperties())

	first, err := repo.Find(context.Background(), domain.SearchFilters{})
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := repo.Find(context.Background(), domain.SearchFilters{})
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].Name)
}
