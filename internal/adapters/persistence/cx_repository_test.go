package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/prunplan/internal/adapters/persistence"
	"github.com/andrescamacho/prunplan/internal/domain/pricing"
	"github.com/andrescamacho/prunplan/test/helpers"
)

func sampleCX() *pricing.CX {
	price := 9240.0
	return &pricing.CX{
		Name: "my-empire-cx",
		Empire: []pricing.CXEntry{
			{Ticker: "LSE", Price: &price},
			{Ticker: "RAT", Direction: pricing.DirectionBuy, Code: "AI1_BUY"},
		},
		Planets: []pricing.CXPlanet{
			{PlanetID: "OT-580b", Code: "AI1_AVG"},
		},
	}
}

func TestCXRepository_SaveAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCXRepository(db)
	cx := sampleCX()

	// Act
	err := repo.Save(context.Background(), cx)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, cx.UUID)

	found, err := repo.FindByUUID(context.Background(), cx.UUID)
	require.NoError(t, err)
	assert.Equal(t, cx, found)
}

func TestCXRepository_FindUnknownUUID(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCXRepository(db)

	_, err := repo.FindByUUID(context.Background(), "00000000-0000-0000-0000-000000000000")

	require.Error(t, err)
	assert.ErrorIs(t, err, pricing.ErrCXNotFound)
}

func TestCXRepository_LoadAll(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCXRepository(db)

	first := sampleCX()
	second := &pricing.CX{Name: "secondary"}
	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))

	// Act
	set, err := repo.LoadAll(context.Background())

	// Assert - the set resolves by uuid like the engine expects
	require.NoError(t, err)
	assert.Len(t, set, 2)

	cx, err := set.CX(first.UUID)
	require.NoError(t, err)
	assert.Equal(t, "my-empire-cx", cx.Name)

	_, err = set.CX("unknown")
	assert.ErrorIs(t, err, pricing.ErrCXNotFound)
}
