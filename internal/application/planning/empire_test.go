package planning_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/prunplan/internal/application/planning"
	"github.com/andrescamacho/prunplan/internal/domain/materialio"
	"github.com/andrescamacho/prunplan/internal/domain/plan"
	"github.com/andrescamacho/prunplan/test/helpers"
)

func TestEmpireService_Balance(t *testing.T) {
	// Arrange - two identical extraction bases on the same planet
	data := helpers.HarmoniaCatalog()

	first := helpers.HarmoniaDraft()
	first.UUID = "plan-a"
	first.Name = "Alpha"

	second := helpers.HarmoniaDraft()
	second.UUID = "plan-b"
	second.Name = "Beta"

	service := planning.NewEmpireService(data, nil)

	// Act
	entries, err := service.Balance(context.Background(), []*plan.Draft{first, second}, "")

	// Assert
	require.NoError(t, err)
	assert.Len(t, entries, 18)

	// ticker-ascending output
	for i := 0; i < len(entries)-1; i++ {
		assert.LessOrEqual(t, entries[i].Ticker, entries[i+1].Ticker)
	}

	// iron ore is produced by both plans and consumed by neither
	feo := findEmpireEntry(t, entries, "FEO")
	assert.Empty(t, feo.InputPlanets)
	require.Len(t, feo.OutputPlanets, 2)
	assert.Equal(t, "Alpha", feo.OutputPlanets[0].PlanName)
	assert.Equal(t, "Beta", feo.OutputPlanets[1].PlanName)
	assert.InDelta(t, 2*feo.OutputPlanets[0].Output, feo.Output, 1e-9)
}

func TestEmpireService_Balance_BrokenPlanFails(t *testing.T) {
	// Arrange
	data := helpers.HarmoniaCatalog()
	draft := helpers.HarmoniaDraft()
	draft.Buildings[0].ActiveRecipes[0].RecipeID = "foo"

	service := planning.NewEmpireService(data, nil)

	// Act
	_, err := service.Balance(context.Background(), []*plan.Draft{draft}, "")

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, planning.ErrRecipeNotFound)
}

func findEmpireEntry(t *testing.T, entries []materialio.EmpireEntry, ticker string) materialio.EmpireEntry {
	t.Helper()
	for _, entry := range entries {
		if entry.Ticker == ticker {
			return entry
		}
	}
	t.Fatalf("ticker %s not in empire balance", ticker)
	return materialio.EmpireEntry{}
}
