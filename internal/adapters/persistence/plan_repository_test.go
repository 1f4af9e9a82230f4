package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/prunplan/internal/adapters/persistence"
	"github.com/andrescamacho/prunplan/internal/domain/gamedata"
	"github.com/andrescamacho/prunplan/internal/domain/plan"
	"github.com/andrescamacho/prunplan/test/helpers"
)

func TestPlanRepository_SaveAssignsIdentity(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPlanRepository(db)
	draft := helpers.HarmoniaDraft()
	require.Empty(t, draft.UUID)

	// Act
	err := repo.Save(context.Background(), draft)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, draft.UUID)
	assert.True(t, draft.Existing())
}

func TestPlanRepository_SaveAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPlanRepository(db)
	draft := helpers.HarmoniaDraft()

	// Act
	require.NoError(t, repo.Save(context.Background(), draft))
	found, err := repo.FindByUUID(context.Background(), draft.UUID)

	// Assert - the round trip through the canonical serialization is lossless
	require.NoError(t, err)
	assert.Equal(t, draft, found)
}

func TestPlanRepository_SaveRejectsEmptyName(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPlanRepository(db)

	err := repo.Save(context.Background(), plan.NewDraft("OT-580b"))

	require.Error(t, err)
	assert.ErrorIs(t, err, persistence.ErrEmptyPlanName)
}

func TestPlanRepository_SaveIsUpsert(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPlanRepository(db)
	draft := helpers.HarmoniaDraft()
	require.NoError(t, repo.Save(context.Background(), draft))

	// Act - mutate and save under the same identity
	draft.Name = "Harmonia Extraction v2"
	draft.Permits = 2
	require.NoError(t, repo.Save(context.Background(), draft))

	// Assert
	found, err := repo.FindByUUID(context.Background(), draft.UUID)
	require.NoError(t, err)
	assert.Equal(t, "Harmonia Extraction v2", found.Name)
	assert.Equal(t, 2, found.Permits)

	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPlanRepository_FindUnknownUUID(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPlanRepository(db)

	_, err := repo.FindByUUID(context.Background(), "00000000-0000-0000-0000-000000000000")

	require.Error(t, err)
	assert.ErrorIs(t, err, persistence.ErrPlanNotFound)
}

func TestPlanRepository_ListAll(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPlanRepository(db)

	first := plan.NewDraft("OT-580b")
	first.Name = "Alpha"
	second := plan.NewDraft("ZV-307c")
	second.Name = "Beta"
	second.COGC = gamedata.COGCResourceExtraction

	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))

	// Act
	drafts, err := repo.ListAll(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	names := []string{drafts[0].Name, drafts[1].Name}
	assert.Contains(t, names, "Alpha")
	assert.Contains(t, names, "Beta")
}

func TestPlanRepository_Delete(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPlanRepository(db)
	draft := helpers.HarmoniaDraft()
	require.NoError(t, repo.Save(context.Background(), draft))

	// Act
	err := repo.Delete(context.Background(), draft.UUID)

	// Assert
	require.NoError(t, err)
	_, err = repo.FindByUUID(context.Background(), draft.UUID)
	assert.ErrorIs(t, err, persistence.ErrPlanNotFound)

	// deleting again reports the miss
	err = repo.Delete(context.Background(), draft.UUID)
	assert.ErrorIs(t, err, persistence.ErrPlanNotFound)
}
