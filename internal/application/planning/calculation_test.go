package planning_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/prunplan/internal/application/planning"
	"github.com/andrescamacho/prunplan/internal/domain/gamedata"
	"github.com/andrescamacho/prunplan/internal/domain/pricing"
	"github.com/andrescamacho/prunplan/test/helpers"
)

func TestCalculation_RefreshKey(t *testing.T) {
	// Arrange
	calc := planning.NewCalculation(helpers.HarmoniaDraft(), helpers.HarmoniaCatalog(), nil, "")
	ctx := context.Background()

	// Act - first computation does not count as a refresh
	_, err := calc.Result(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, calc.RefreshKey())

	// a dependency change triggers one recompute on next access
	calc.Invalidate()
	_, err = calc.Result(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, calc.RefreshKey())

	// reading again without invalidation does not recompute
	_, err = calc.Result(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, calc.RefreshKey())
}

func TestCalculation_FailedRecomputeSticksUntilFixed(t *testing.T) {
	// Arrange
	draft := helpers.HarmoniaDraft()
	calc := planning.NewCalculation(draft, helpers.HarmoniaCatalog(), nil, "")
	ctx := context.Background()

	_, err := calc.Result(ctx)
	require.NoError(t, err)

	// Act - break the draft and invalidate
	require.NoError(t, calc.Handlers().ChangeBuildingRecipe(0, 0, "foo"))
	calc.Invalidate()

	// Assert - every access reports the stored failure
	_, err = calc.Result(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, planning.ErrRecipeNotFound)

	_, err = calc.Result(ctx)
	assert.ErrorIs(t, err, planning.ErrRecipeNotFound)

	// fixing the draft recovers on the next recompute
	require.NoError(t, calc.Handlers().ChangeBuildingRecipe(0, 0, "EXT#FEO"))
	calc.Invalidate()
	_, err = calc.Result(ctx)
	assert.NoError(t, err)
}

func TestCalculation_SelectCXInvalidates(t *testing.T) {
	// Arrange - a CX that forces every LSE-style lookup to a fixed price
	data := helpers.HarmoniaCatalog()
	price := 9999.0
	cxs := pricing.CXSet{
		"cx-1": {
			UUID:   "cx-1",
			Empire: []pricing.CXEntry{{Ticker: "RAT", Price: &price}},
		},
	}
	calc := planning.NewCalculation(helpers.HarmoniaDraft(), data, cxs, "")
	ctx := context.Background()

	before, err := calc.Result(ctx)
	require.NoError(t, err)

	// Act
	calc.SelectCX("cx-1")
	after, err := calc.Result(ctx)
	require.NoError(t, err)

	// Assert - the recompute happened and RAT is now valued at the override
	assert.EqualValues(t, 1, calc.RefreshKey())
	ratBefore := findMaterial(t, before.MaterialIO, "RAT")
	ratAfter := findMaterial(t, after.MaterialIO, "RAT")
	assert.NotEqual(t, ratBefore.Price, ratAfter.Price)
	assert.InDelta(t, ratAfter.Delta*9999.0, ratAfter.Price, 1e-6)
}

func TestCalculation_AddBuildingRecipeUsesComputedOptions(t *testing.T) {
	// Arrange
	draft := helpers.HarmoniaDraft()
	calc := planning.NewCalculation(draft, helpers.HarmoniaCatalog(), nil, "")

	_, err := calc.Result(context.Background())
	require.NoError(t, err)

	// Act - the extractor's first option is the iron ore deposit
	err = calc.Handlers().AddBuildingRecipe(0)

	// Assert
	require.NoError(t, err)
	recipes := draft.Buildings[0].ActiveRecipes
	assert.Equal(t, "EXT#FEO", recipes[len(recipes)-1].RecipeID)
}

func TestCalculation_SaveableAndExisting(t *testing.T) {
	// a new plan is always saveable
	fresh := planning.NewCalculation(helpers.HarmoniaDraft(), helpers.HarmoniaCatalog(), nil, "")
	assert.False(t, fresh.Existing())
	assert.True(t, fresh.Saveable())

	// a persisted, untouched plan is not
	draft := helpers.HarmoniaDraft()
	draft.UUID = "11111111-2222-3333-4444-555555555555"
	persisted := planning.NewCalculation(draft, helpers.HarmoniaCatalog(), nil, "")
	assert.True(t, persisted.Existing())
	assert.False(t, persisted.Saveable())

	// until it is modified
	persisted.Handlers().UpdateCorpHQ(true)
	assert.True(t, persisted.Saveable())
}

func TestCalculation_BackendData(t *testing.T) {
	// Arrange
	calc := planning.NewCalculation(helpers.HarmoniaDraft(), helpers.HarmoniaCatalog(), nil, "")

	// Act
	raw, err := json.Marshal(calc.BackendData())
	require.NoError(t, err)

	// Assert
	expected := `{
		"name": "Harmonia Extraction",
		"planet_id": "ZV-307c",
		"permits_total": 3,
		"permits_used": 1,
		"override_empire": false,
		"empire_uuid": null,
		"faction": "NONE",
		"planet": {
			"planetid": "ZV-307c",
			"cogc": "RESOURCE_EXTRACTION",
			"corphq": false,
			"permits": 3,
			"experts": [
				{"type": "Agriculture", "amount": 0},
				{"type": "Chemistry", "amount": 0},
				{"type": "Construction", "amount": 0},
				{"type": "Electronics", "amount": 0},
				{"type": "Food_Industries", "amount": 0},
				{"type": "Fuel_Refining", "amount": 0},
				{"type": "Manufacturing", "amount": 0},
				{"type": "Metallurgy", "amount": 0},
				{"type": "Resource_Extraction", "amount": 0}
			],
			"workforce": [
				{"type": "pioneer", "lux1": true, "lux2": true},
				{"type": "settler", "lux1": false, "lux2": false},
				{"type": "technician", "lux1": false, "lux2": false},
				{"type": "engineer", "lux1": false, "lux2": false},
				{"type": "scientist", "lux1": false, "lux2": false}
			]
		},
		"infrastructure": [
			{"building": "HB1", "amount": 20},
			{"building": "HB2", "amount": 0},
			{"building": "HB3", "amount": 0},
			{"building": "HB4", "amount": 0},
			{"building": "HB5", "amount": 0},
			{"building": "HBB", "amount": 0},
			{"building": "HBC", "amount": 0},
			{"building": "HBM", "amount": 0},
			{"building": "HBL", "amount": 0},
			{"building": "STO", "amount": 0}
		],
		"buildings": [
			{"name": "EXT", "amount": 1, "active_recipes": [
				{"recipeid": "EXT#FEO", "amount": 1},
				{"recipeid": "EXT#SIO", "amount": 1}
			]},
			{"name": "FP", "amount": 19, "active_recipes": [
				{"recipeid": "FP#RAT", "amount": 1},
				{"recipeid": "FP#COF", "amount": 1}
			]},
			{"name": "HYF", "amount": 11, "active_recipes": [
				{"recipeid": "HYF#GRN", "amount": 1},
				{"recipeid": "HYF#VEG", "amount": 1}
			]},
			{"name": "INC", "amount": 7, "active_recipes": [
				{"recipeid": "INC#C", "amount": 1},
				{"recipeid": "INC#FLX", "amount": 1}
			]},
			{"name": "RIG", "amount": 21, "active_recipes": [
				{"recipeid": "RIG#H2O", "amount": 1}
			]}
		]
	}`
	assert.JSONEq(t, expected, string(raw))
}

func TestCalculation_UnknownCXPricesEverythingAtZero(t *testing.T) {
	// Arrange - a selected but unknown CX id degrades prices, not validity
	calc := planning.NewCalculation(helpers.HarmoniaDraft(), helpers.HarmoniaCatalog(), pricing.CXSet{}, "missing")

	// Act
	result, err := calc.Result(context.Background())

	// Assert
	require.NoError(t, err)
	for _, item := range result.MaterialIO {
		assert.Zero(t, item.Price)
	}
	assert.Equal(t, gamedata.COGCResourceExtraction, result.COGC)
}
