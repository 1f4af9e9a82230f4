package plan_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/prunplan/internal/domain/gamedata"
	"github.com/andrescamacho/prunplan/internal/domain/plan"
)

type stubBuildingResolver struct {
	buildings map[string]*gamedata.Building
}

func (s stubBuildingResolver) ResolveBuilding(_ context.Context, ticker string) (*gamedata.Building, error) {
	b, ok := s.buildings[ticker]
	if !ok {
		return nil, gamedata.ErrBuildingNotFound
	}
	return b, nil
}

type stubOptions struct {
	options []gamedata.Recipe
}

func (s stubOptions) RecipeOptions(int) []gamedata.Recipe {
	return s.options
}

func draftWithBuildings() *plan.Draft {
	draft := plan.NewDraft("OT-580b")
	draft.Buildings = []plan.Building{
		{Name: "FP", Amount: 2, ActiveRecipes: []plan.ActiveRecipe{
			{RecipeID: "FP#RAT", Amount: 1},
		}},
	}
	return draft
}

func newHandlers(draft *plan.Draft, options plan.RecipeOptionsProvider) *plan.Handlers {
	resolver := stubBuildingResolver{buildings: map[string]*gamedata.Building{
		"EXT": {Ticker: "EXT"},
	}}
	return plan.NewHandlers(draft, resolver, options)
}

func TestHandlers_UpdateBuildingAmount_OutOfRange(t *testing.T) {
	// Arrange
	draft := draftWithBuildings()
	handlers := newHandlers(draft, nil)

	// Act
	err := handlers.UpdateBuildingAmount(99, 5)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, plan.ErrIndexOutOfRange)

	var indexErr *plan.IndexOutOfRangeError
	require.ErrorAs(t, err, &indexErr)
	assert.Equal(t, 99, indexErr.Index)
	assert.False(t, handlers.Modified())
}

func TestHandlers_UpdatePermits_Clamps(t *testing.T) {
	draft := plan.NewDraft("OT-580b")
	handlers := newHandlers(draft, nil)

	handlers.UpdatePermits(10)
	assert.Equal(t, 3, draft.Permits)

	handlers.UpdatePermits(-1)
	assert.Equal(t, 1, draft.Permits)

	handlers.UpdatePermits(2)
	assert.Equal(t, 2, draft.Permits)
}

func TestHandlers_UpdateExpert_Clamps(t *testing.T) {
	draft := plan.NewDraft("OT-580b")
	handlers := newHandlers(draft, nil)

	handlers.UpdateExpert(gamedata.ExpertMetallurgy, -5)
	assert.Equal(t, 0, draft.Experts[gamedata.ExpertMetallurgy])

	handlers.UpdateExpert(gamedata.ExpertMetallurgy, 9)
	assert.Equal(t, 5, draft.Experts[gamedata.ExpertMetallurgy])
}

func TestHandlers_UpdateWorkforceLux(t *testing.T) {
	draft := plan.NewDraft("OT-580b")
	handlers := newHandlers(draft, nil)

	handlers.UpdateWorkforceLux(gamedata.WorkforceSettler, plan.LuxSlot1, true)
	handlers.UpdateWorkforceLux(gamedata.WorkforceSettler, plan.LuxSlot2, true)
	handlers.UpdateWorkforceLux(gamedata.WorkforceSettler, plan.LuxSlot1, false)

	assert.Equal(t, plan.Luxuries{Lux1: false, Lux2: true}, draft.Workforce[gamedata.WorkforceSettler])
}

func TestHandlers_CreateBuilding(t *testing.T) {
	// Arrange
	draft := plan.NewDraft("OT-580b")
	handlers := newHandlers(draft, nil)

	// Act
	err := handlers.CreateBuilding(context.Background(), "EXT")

	// Assert
	require.NoError(t, err)
	require.Len(t, draft.Buildings, 1)
	assert.Equal(t, "EXT", draft.Buildings[0].Name)
	assert.Equal(t, 1, draft.Buildings[0].Amount)
	assert.Empty(t, draft.Buildings[0].ActiveRecipes)
	assert.True(t, handlers.Modified())
}

func TestHandlers_CreateBuilding_UnknownTicker(t *testing.T) {
	draft := plan.NewDraft("OT-580b")
	handlers := newHandlers(draft, nil)

	err := handlers.CreateBuilding(context.Background(), "NOPE")

	require.Error(t, err)
	assert.ErrorIs(t, err, gamedata.ErrBuildingNotFound)
	assert.Empty(t, draft.Buildings)
	assert.False(t, handlers.Modified())
}

func TestHandlers_DeleteBuilding(t *testing.T) {
	draft := draftWithBuildings()
	handlers := newHandlers(draft, nil)

	require.NoError(t, handlers.DeleteBuilding(0))
	assert.Empty(t, draft.Buildings)
}

func TestHandlers_AddBuildingRecipe_NoOptions(t *testing.T) {
	// Arrange - the building has no computable recipe options
	draft := draftWithBuildings()
	handlers := newHandlers(draft, stubOptions{})

	// Act
	err := handlers.AddBuildingRecipe(0)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, plan.ErrNoRecipeOptions)
	assert.Len(t, draft.Buildings[0].ActiveRecipes, 1)
}

func TestHandlers_AddBuildingRecipe_TakesFirstOption(t *testing.T) {
	// Arrange
	draft := draftWithBuildings()
	handlers := newHandlers(draft, stubOptions{options: []gamedata.Recipe{
		{RecipeID: "FP#COF"},
		{RecipeID: "FP#RAT"},
	}})

	// Act
	err := handlers.AddBuildingRecipe(0)

	// Assert
	require.NoError(t, err)
	require.Len(t, draft.Buildings[0].ActiveRecipes, 2)
	assert.Equal(t, plan.ActiveRecipe{RecipeID: "FP#COF", Amount: 1}, draft.Buildings[0].ActiveRecipes[1])
}

func TestHandlers_RecipeMutations(t *testing.T) {
	draft := draftWithBuildings()
	handlers := newHandlers(draft, nil)

	require.NoError(t, handlers.UpdateBuildingRecipeAmount(0, 0, 4))
	assert.Equal(t, 4, draft.Buildings[0].ActiveRecipes[0].Amount)

	require.NoError(t, handlers.ChangeBuildingRecipe(0, 0, "FP#COF"))
	assert.Equal(t, "FP#COF", draft.Buildings[0].ActiveRecipes[0].RecipeID)

	require.NoError(t, handlers.DeleteBuildingRecipe(0, 0))
	assert.Empty(t, draft.Buildings[0].ActiveRecipes)

	err := handlers.DeleteBuildingRecipe(0, 0)
	assert.ErrorIs(t, err, plan.ErrIndexOutOfRange)
}

func TestHandlers_ChangePlanName_Trims(t *testing.T) {
	draft := plan.NewDraft("OT-580b")
	handlers := newHandlers(draft, nil)

	handlers.ChangePlanName("  Rich Soil  ")

	assert.Equal(t, "Rich Soil", draft.Name)
}

func TestHandlers_AutoOptimizeHabs_OnlyMarksModified(t *testing.T) {
	// Arrange
	draft := plan.NewDraft("OT-580b")
	before := *draft
	handlers := newHandlers(draft, nil)

	// Act
	handlers.UpdateAutoOptimizeHabs(true)

	// Assert - nothing stored, but the draft counts as modified
	assert.True(t, handlers.Modified())
	assert.Equal(t, before.Permits, draft.Permits)
	assert.Equal(t, before.CorpHQ, draft.CorpHQ)
	assert.Len(t, draft.Buildings, len(before.Buildings))
}

func TestHandlers_ModifiedFlagLifecycle(t *testing.T) {
	draft := plan.NewDraft("OT-580b")
	handlers := newHandlers(draft, nil)

	assert.False(t, handlers.Modified())

	handlers.UpdateCorpHQ(true)
	assert.True(t, handlers.Modified())

	handlers.ResetModified()
	assert.False(t, handlers.Modified())
}
