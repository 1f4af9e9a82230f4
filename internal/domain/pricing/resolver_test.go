package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/prunplan/internal/domain/gamedata"
	"github.com/andrescamacho/prunplan/internal/domain/materialio"
	"github.com/andrescamacho/prunplan/internal/domain/pricing"
)

type exchangeMap map[string]*gamedata.Exchange

func (m exchangeMap) Exchange(tickerID string) (*gamedata.Exchange, error) {
	e, ok := m[tickerID]
	if !ok {
		return nil, gamedata.ErrExchangeNotFound
	}
	return e, nil
}

type buildingMap map[string]*gamedata.Building

func (m buildingMap) Building(ticker string) (*gamedata.Building, error) {
	b, ok := m[ticker]
	if !ok {
		return nil, gamedata.ErrBuildingNotFound
	}
	return b, nil
}

func lseExchanges() exchangeMap {
	return exchangeMap{
		"LSE.PP30D_UNIVERSE": {TickerID: "LSE.PP30D_UNIVERSE", Ask: 9120, Bid: 8940, PriceAverage: 9030.47},
		"LSE.AI1":            {TickerID: "LSE.AI1", Ask: 9400, Bid: 9100, PriceAverage: 9250},
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestResolver_EmpireFixedPriceWinsOnAnyPlanet(t *testing.T) {
	// Arrange - empire-wide fixed price for LSE, no planet overrides
	cx := &pricing.CX{
		UUID: "cx-1",
		Empire: []pricing.CXEntry{
			{Ticker: "LSE", Price: floatPtr(9240)},
		},
	}
	cxs := pricing.CXSet{"cx-1": cx}

	for _, planetID := range []string{"OT-580b", "ZV-307c", ""} {
		resolver := pricing.NewResolver(lseExchanges(), cxs, pricing.Selection{CXID: "cx-1", PlanetID: planetID})

		// Act + Assert
		assert.Equal(t, 9240.0, resolver.Price("LSE", pricing.DirectionBuy))
		assert.Equal(t, 9240.0, resolver.Price("LSE", pricing.DirectionSell))
	}
}

func TestResolver_EmptyEmpireFallsToUniversalAverage(t *testing.T) {
	// Arrange
	cx := &pricing.CX{UUID: "cx-1"}
	cxs := pricing.CXSet{"cx-1": cx}
	resolver := pricing.NewResolver(lseExchanges(), cxs, pricing.Selection{CXID: "cx-1", PlanetID: "OT-580b"})

	// Act
	price := resolver.Price("LSE", pricing.DirectionBuy)

	// Assert
	assert.Equal(t, 9030.47, price)
}

func TestResolver_PlanetPreferenceBeatsDefault(t *testing.T) {
	// Arrange - the planet block prices LSE through AI1 asks
	cx := &pricing.CX{
		UUID: "cx-1",
		Planets: []pricing.CXPlanet{
			{
				PlanetID: "OT-580b",
				Entries:  []pricing.CXEntry{{Ticker: "LSE", Direction: pricing.DirectionBuy, Code: "AI1_BUY"}},
			},
		},
	}
	cxs := pricing.CXSet{"cx-1": cx}
	resolver := pricing.NewResolver(lseExchanges(), cxs, pricing.Selection{CXID: "cx-1", PlanetID: "OT-580b"})

	// Act + Assert - BUY hits the planet entry, SELL falls through
	assert.Equal(t, 9400.0, resolver.Price("LSE", pricing.DirectionBuy))
	assert.Equal(t, 9030.47, resolver.Price("LSE", pricing.DirectionSell))
}

func TestResolver_PlanetCodeAppliesToAllMaterials(t *testing.T) {
	// Arrange - a planet-wide pricing code without per-material entries
	cx := &pricing.CX{
		UUID:    "cx-1",
		Planets: []pricing.CXPlanet{{PlanetID: "OT-580b", Code: "AI1_SELL"}},
	}
	cxs := pricing.CXSet{"cx-1": cx}
	resolver := pricing.NewResolver(lseExchanges(), cxs, pricing.Selection{CXID: "cx-1", PlanetID: "OT-580b"})

	// Act + Assert
	assert.Equal(t, 9100.0, resolver.Price("LSE", pricing.DirectionBuy))
}

func TestResolver_UnknownCXResolvesEverythingToZero(t *testing.T) {
	resolver := pricing.NewResolver(lseExchanges(), pricing.CXSet{}, pricing.Selection{CXID: "missing"})

	assert.Equal(t, 0.0, resolver.Price("LSE", pricing.DirectionBuy))
}

func TestResolver_MissingExchangeDataResolvesToZero(t *testing.T) {
	resolver := pricing.NewResolver(exchangeMap{}, nil, pricing.Selection{})

	assert.Equal(t, 0.0, resolver.Price("LSE", pricing.DirectionBuy))
}

func TestResolver_MaterialIOTotalPrice(t *testing.T) {
	// Arrange
	resolver := pricing.NewResolver(lseExchanges(), nil, pricing.Selection{})
	items := []materialio.Minimal{
		{Ticker: "LSE", Input: 3, Output: 1},
	}

	// Act - net buy of 2 units at the universal average
	total := resolver.MaterialIOTotalPrice(items, pricing.DirectionBuy)

	// Assert
	assert.InDelta(t, -2*9030.47, total, 1e-9)
}

func TestResolver_EnhanceWithPricesFollowsDeltaSign(t *testing.T) {
	// Arrange
	exchanges := exchangeMap{
		"RAT.PP30D_UNIVERSE": {TickerID: "RAT.PP30D_UNIVERSE", Ask: 120, Bid: 100, PriceAverage: 110},
	}
	resolver := pricing.NewResolver(exchanges, nil, pricing.Selection{})

	items := []materialio.Material{
		{Ticker: "RAT", Input: 0, Output: 5, Delta: 5},
		{Ticker: "RAT", Input: 5, Output: 0, Delta: -5},
	}

	// Act
	priced := resolver.EnhanceWithPrices(items)

	// Assert - producers sell, consumers buy
	require.Len(t, priced, 2)
	assert.InDelta(t, 5*110.0, priced[0].Price, 1e-9)
	assert.InDelta(t, -5*110.0, priced[1].Price, 1e-9)
}

func TestResolver_InfrastructureCosts(t *testing.T) {
	// Arrange
	exchanges := exchangeMap{
		"BBH.PP30D_UNIVERSE": {TickerID: "BBH.PP30D_UNIVERSE", PriceAverage: 1270},
		"BDE.PP30D_UNIVERSE": {TickerID: "BDE.PP30D_UNIVERSE", PriceAverage: 1160},
	}
	buildings := buildingMap{
		"HB1": {Ticker: "HB1", Costs: []gamedata.MaterialAmount{
			{Ticker: "BBH", Amount: 4},
			{Ticker: "BDE", Amount: 4},
		}},
	}
	resolver := pricing.NewResolver(exchanges, nil, pricing.Selection{})

	// Act
	costs, err := resolver.InfrastructureCosts(
		map[gamedata.InfrastructureType]int{gamedata.InfraHB1: 3},
		buildings,
	)

	// Assert - per unit, independent of the configured amount
	require.NoError(t, err)
	require.Contains(t, costs, gamedata.InfraHB1)
	assert.InDelta(t, 4*1270+4*1160.0, costs[gamedata.InfraHB1], 1e-9)
	assert.NotContains(t, costs, gamedata.InfraSTO)
}
