package gamedata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/andrescamacho/prunplan/internal/domain/gamedata"
)

func TestStore_LoadAndLookups(t *testing.T) {
	// Arrange
	repo := newFakeRepository()
	repo.materials = []domain.Material{{Ticker: "RAT", Weight: 0.21, Volume: 0.1}}
	repo.buildings = []domain.Building{{Ticker: "FP", AreaCost: 12}}
	repo.recipes = []domain.Recipe{
		{RecipeID: "FP#RAT", BuildingTicker: "FP"},
		{RecipeID: "FP#COF", BuildingTicker: "FP"},
	}
	repo.exchanges = []domain.Exchange{{TickerID: "RAT.PP30D_UNIVERSE", PriceAverage: 112}}

	store := NewStore(repo, nil)

	// Act
	err := store.Load(context.Background())

	// Assert
	require.NoError(t, err)

	material, err := store.Material("RAT")
	require.NoError(t, err)
	assert.Equal(t, 0.21, material.Weight)

	building, err := store.Building("FP")
	require.NoError(t, err)
	assert.Equal(t, 12, building.AreaCost)

	recipes, err := store.RecipesFor("FP")
	require.NoError(t, err)
	assert.Len(t, recipes, 2)

	exchange, err := store.Exchange("RAT.PP30D_UNIVERSE")
	require.NoError(t, err)
	assert.Equal(t, 112.0, exchange.PriceAverage)
}

func TestStore_LookupMisses(t *testing.T) {
	store := NewStore(newFakeRepository(), nil)
	require.NoError(t, store.Load(context.Background()))

	_, err := store.Material("XYZ")
	assert.ErrorIs(t, err, domain.ErrMaterialNotFound)

	_, err = store.Building("XYZ")
	assert.ErrorIs(t, err, domain.ErrBuildingNotFound)

	_, err = store.RecipesFor("XYZ")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	_, err = store.Exchange("XYZ.AI1")
	assert.ErrorIs(t, err, domain.ErrExchangeNotFound)
}

func TestStore_PlanetFromRepositoryCache(t *testing.T) {
	// Arrange
	repo := newFakeRepository()
	repo.planets["ZV-307c"] = &domain.Planet{NaturalID: "ZV-307c", Name: "Harmonia"}
	store := NewStore(repo, nil)

	// Act
	planet, err := store.Planet(context.Background(), "ZV-307c")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Harmonia", planet.Name)
}

func TestStore_PlanetMissFetchesAndCaches(t *testing.T) {
	// Arrange
	repo := newFakeRepository()
	source := newFakeSource()
	store := NewStore(repo, source)

	// Act - twice: second hit must come from memory
	first, err := store.Planet(context.Background(), "ZV-307c")
	require.NoError(t, err)
	second, err := store.Planet(context.Background(), "ZV-307c")
	require.NoError(t, err)

	// Assert
	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, 1, source.fetches[EntityPlanet+"ZV-307c"])
	assert.Contains(t, repo.planets, "ZV-307c")
}

func TestStore_PlanetMissWithoutSourceFails(t *testing.T) {
	store := NewStore(newFakeRepository(), nil)

	_, err := store.Planet(context.Background(), "XX-000x")

	assert.ErrorIs(t, err, domain.ErrPlanetNotFound)
}
