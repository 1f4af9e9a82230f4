package materialio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/prunplan/internal/domain/gamedata"
	"github.com/andrescamacho/prunplan/internal/domain/materialio"
)

type materialMap map[string]*gamedata.Material

func (m materialMap) Material(ticker string) (*gamedata.Material, error) {
	mat, ok := m[ticker]
	if !ok {
		return nil, gamedata.ErrMaterialNotFound
	}
	return mat, nil
}

func TestCombineMinimal_SumsPerTicker(t *testing.T) {
	// Arrange
	a := []materialio.Minimal{
		{Ticker: "RAT", Input: 2, Output: 10},
		{Ticker: "H2O", Input: 5},
	}
	b := []materialio.Minimal{
		{Ticker: "H2O", Input: 3, Output: 1},
		{Ticker: "DW", Output: 4},
	}

	// Act
	combined := materialio.CombineMinimal(a, b)

	// Assert
	require.Len(t, combined, 3)
	assert.Equal(t, materialio.Minimal{Ticker: "RAT", Input: 2, Output: 10}, combined[0])
	assert.Equal(t, materialio.Minimal{Ticker: "H2O", Input: 8, Output: 1}, combined[1])
	assert.Equal(t, materialio.Minimal{Ticker: "DW", Output: 4}, combined[2])
}

func TestCombineMinimal_FirstOccurrenceOrder(t *testing.T) {
	combined := materialio.CombineMinimal(
		[]materialio.Minimal{{Ticker: "ZZZ", Output: 1}},
		[]materialio.Minimal{{Ticker: "AAA", Input: 1}},
		[]materialio.Minimal{{Ticker: "ZZZ", Input: 2}},
	)

	require.Len(t, combined, 2)
	assert.Equal(t, "ZZZ", combined[0].Ticker)
	assert.Equal(t, "AAA", combined[1].Ticker)
}

func TestCombineMinimal_SkipsEmptyTickers(t *testing.T) {
	combined := materialio.CombineMinimal([]materialio.Minimal{
		{Ticker: "", Input: 5},
		{Ticker: "RAT", Output: 1},
	})

	require.Len(t, combined, 1)
	assert.Equal(t, "RAT", combined[0].Ticker)
}

func TestCombineMinimal_RegroupingIsAssociative(t *testing.T) {
	// Arrange
	a := []materialio.Minimal{{Ticker: "RAT", Input: 2}, {Ticker: "DW", Output: 3}}
	b := []materialio.Minimal{{Ticker: "DW", Input: 1}}
	c := []materialio.Minimal{{Ticker: "RAT", Output: 7}, {Ticker: "COF", Input: 4}}

	// Act - combine flat and nested groupings
	flat := materialio.CombineMinimal(a, b, c)
	regrouped := materialio.CombineMinimal(materialio.CombineMinimal(a, b), c)

	// Assert - per-ticker totals never depend on grouping
	assert.Equal(t, flat, regrouped)
	assert.Equal(t, flat, materialio.CombineMinimal(flat))
}

func TestEnhanceMinimal_DerivesDeltaWeightVolume(t *testing.T) {
	// Arrange
	materials := materialMap{
		"RAT": {Ticker: "RAT", Weight: 0.21, Volume: 0.1},
	}

	// Act
	enhanced, err := materialio.EnhanceMinimal([]materialio.Minimal{
		{Ticker: "RAT", Input: 2, Output: 10},
	}, materials)

	// Assert
	require.NoError(t, err)
	require.Len(t, enhanced, 1)
	assert.Equal(t, 8.0, enhanced[0].Delta)
	assert.Equal(t, 0.21, enhanced[0].IndividualWeight)
	assert.Equal(t, 0.1, enhanced[0].IndividualVolume)
	assert.InDelta(t, 1.68, enhanced[0].TotalWeight, 1e-9)
	assert.InDelta(t, 0.8, enhanced[0].TotalVolume, 1e-9)
}

func TestEnhanceMinimal_SortsTickerAscending(t *testing.T) {
	// Arrange
	materials := materialMap{
		"RAT": {Ticker: "RAT"},
		"ALG": {Ticker: "ALG"},
		"H2O": {Ticker: "H2O"},
	}

	// Act
	enhanced, err := materialio.EnhanceMinimal([]materialio.Minimal{
		{Ticker: "RAT", Output: 1},
		{Ticker: "H2O", Input: 1},
		{Ticker: "ALG", Input: 1},
	}, materials)

	// Assert
	require.NoError(t, err)
	require.Len(t, enhanced, 3)
	for i := 0; i < len(enhanced)-1; i++ {
		assert.LessOrEqual(t, enhanced[i].Ticker, enhanced[i+1].Ticker)
	}
}

func TestEnhanceMinimal_UnknownTickerFails(t *testing.T) {
	_, err := materialio.EnhanceMinimal([]materialio.Minimal{
		{Ticker: "XYZ", Input: 1},
	}, materialMap{})

	require.Error(t, err)
	assert.ErrorIs(t, err, gamedata.ErrMaterialNotFound)
}
