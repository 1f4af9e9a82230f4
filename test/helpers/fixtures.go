package helpers

import (
	"context"

	"github.com/andrescamacho/prunplan/internal/domain/gamedata"
	"github.com/andrescamacho/prunplan/internal/domain/plan"
)

// MockReferenceData is an in-memory test double for the reference data port.
type MockReferenceData struct {
	Materials map[string]*gamedata.Material
	Buildings map[string]*gamedata.Building
	Recipes   map[string][]gamedata.Recipe
	Exchanges map[string]*gamedata.Exchange
	Planets   map[string]*gamedata.Planet
}

// NewMockReferenceData creates an empty mock.
func NewMockReferenceData() *MockReferenceData {
	return &MockReferenceData{
		Materials: make(map[string]*gamedata.Material),
		Buildings: make(map[string]*gamedata.Building),
		Recipes:   make(map[string][]gamedata.Recipe),
		Exchanges: make(map[string]*gamedata.Exchange),
		Planets:   make(map[string]*gamedata.Planet),
	}
}

func (m *MockReferenceData) Material(ticker string) (*gamedata.Material, error) {
	mat, ok := m.Materials[ticker]
	if !ok {
		return nil, gamedata.ErrMaterialNotFound
	}
	return mat, nil
}

func (m *MockReferenceData) Building(ticker string) (*gamedata.Building, error) {
	b, ok := m.Buildings[ticker]
	if !ok {
		return nil, gamedata.ErrBuildingNotFound
	}
	return b, nil
}

func (m *MockReferenceData) RecipesFor(buildingTicker string) ([]gamedata.Recipe, error) {
	recipes, ok := m.Recipes[buildingTicker]
	if !ok {
		return nil, gamedata.ErrRecipeNotFound
	}
	return recipes, nil
}

func (m *MockReferenceData) Exchange(tickerID string) (*gamedata.Exchange, error) {
	e, ok := m.Exchanges[tickerID]
	if !ok {
		return nil, gamedata.ErrExchangeNotFound
	}
	return e, nil
}

func (m *MockReferenceData) Planet(_ context.Context, naturalID string) (*gamedata.Planet, error) {
	p, ok := m.Planets[naturalID]
	if !ok {
		return nil, gamedata.ErrPlanetNotFound
	}
	return p, nil
}

// HarmoniaPlanetID is the planet of the shared calculation fixture.
const HarmoniaPlanetID = "ZV-307c"

func pioneers(n int) map[gamedata.WorkforceType]int {
	return map[gamedata.WorkforceType]int{gamedata.WorkforcePioneer: n}
}

// HarmoniaCatalog builds the reference data snapshot for the shared
// calculation fixture: a rocky resource planet with iron ore, silica and
// water deposits, five production buildings and a small material economy.
func HarmoniaCatalog() *MockReferenceData {
	data := NewMockReferenceData()

	materials := []gamedata.Material{
		{Ticker: "FEO", Name: "ironOre", Category: "ores", Weight: 1.19, Volume: 0.16},
		{Ticker: "SIO", Name: "silicaOre", Category: "ores", Weight: 1.1, Volume: 0.16},
		{Ticker: "H2O", Name: "water", Category: "liquids", Weight: 0.2, Volume: 0.2},
		{Ticker: "GRN", Name: "grains", Category: "crops", Weight: 1.2, Volume: 1.2},
		{Ticker: "ALG", Name: "algae", Category: "crops", Weight: 0.7, Volume: 1},
		{Ticker: "MAI", Name: "maize", Category: "crops", Weight: 1.2, Volume: 1.5},
		{Ticker: "NUT", Name: "nutrients", Category: "agricultural", Weight: 0.9, Volume: 1},
		{Ticker: "VEG", Name: "vegetables", Category: "crops", Weight: 0.9, Volume: 1},
		{Ticker: "RAT", Name: "rations", Category: "consumables", Weight: 0.21, Volume: 0.1},
		{Ticker: "CAF", Name: "caffeine", Category: "agricultural", Weight: 0.2, Volume: 0.1},
		{Ticker: "COF", Name: "coffee", Category: "consumables", Weight: 0.1, Volume: 0.1},
		{Ticker: "HCP", Name: "hydrocarbonPlants", Category: "crops", Weight: 0.8, Volume: 1},
		{Ticker: "C", Name: "carbon", Category: "elements", Weight: 2.25, Volume: 1},
		{Ticker: "ASH", Name: "ash", Category: "elements", Weight: 1.1, Volume: 0.5},
		{Ticker: "LST", Name: "limestone", Category: "minerals", Weight: 1.48, Volume: 0.55},
		{Ticker: "S", Name: "sulfur", Category: "elements", Weight: 2.07, Volume: 1},
		{Ticker: "FLX", Name: "flux", Category: "metallurgy", Weight: 0.25, Volume: 0.1},
		{Ticker: "O", Name: "oxygen", Category: "gases", Weight: 1.14, Volume: 1},
		{Ticker: "BSE", Name: "basicStructuralElements", Category: "prefabs", Weight: 0.3, Volume: 0.5},
		{Ticker: "BBH", Name: "basicBulkhead", Category: "prefabs", Weight: 0.5, Volume: 0.6},
		{Ticker: "BDE", Name: "basicDeckElements", Category: "prefabs", Weight: 0.1, Volume: 1.5},
		{Ticker: "TRU", Name: "trussesSmall", Category: "prefabs", Weight: 0.1, Volume: 1.5},
		{Ticker: "MCG", Name: "mineralConstructionGranulate", Category: "construction materials", Weight: 0.24, Volume: 0.1},
	}
	for i := range materials {
		data.Materials[materials[i].Ticker] = &materials[i]
	}

	buildings := []gamedata.Building{
		{
			Ticker: "EXT", Name: "extractor",
			Expertise: gamedata.ExpertResourceExtraction,
			Workforce: pioneers(60), AreaCost: 25,
			Costs: []gamedata.MaterialAmount{{Ticker: "BSE", Amount: 16}, {Ticker: "TRU", Amount: 10}},
		},
		{
			Ticker: "RIG", Name: "rig",
			Expertise: gamedata.ExpertResourceExtraction,
			Workforce: pioneers(30), AreaCost: 11,
			Costs: []gamedata.MaterialAmount{{Ticker: "BSE", Amount: 12}, {Ticker: "TRU", Amount: 8}},
		},
		{
			Ticker: "FP", Name: "foodProcessor",
			Expertise: gamedata.ExpertFoodIndustries,
			Workforce: pioneers(40), AreaCost: 12,
			Costs: []gamedata.MaterialAmount{{Ticker: "BBH", Amount: 6}, {Ticker: "BDE", Amount: 6}},
		},
		{
			Ticker: "HYF", Name: "hydroponicsFarm",
			Expertise: gamedata.ExpertAgriculture,
			Workforce: pioneers(40), AreaCost: 17,
			Costs: []gamedata.MaterialAmount{{Ticker: "BBH", Amount: 8}, {Ticker: "BSE", Amount: 4}},
		},
		{
			Ticker: "INC", Name: "incinerator",
			Expertise: gamedata.ExpertChemistry,
			Workforce: pioneers(40), AreaCost: 14,
			Costs: []gamedata.MaterialAmount{{Ticker: "BBH", Amount: 6}, {Ticker: "BSE", Amount: 6}},
		},
		{
			Ticker: "HB1", Name: "habitationPioneer",
			Workforce: map[gamedata.WorkforceType]int{}, AreaCost: 10,
			Costs: []gamedata.MaterialAmount{{Ticker: "BBH", Amount: 4}, {Ticker: "BDE", Amount: 4}},
		},
		{
			Ticker: "STO", Name: "storageFacility",
			Workforce: map[gamedata.WorkforceType]int{}, AreaCost: 5,
			Costs: []gamedata.MaterialAmount{{Ticker: "BSE", Amount: 6}, {Ticker: "TRU", Amount: 12}},
		},
	}
	for i := range buildings {
		data.Buildings[buildings[i].Ticker] = &buildings[i]
	}

	halfDay := int64(43_200_000)
	data.Recipes["FP"] = []gamedata.Recipe{
		{
			RecipeID: "FP#RAT", BuildingTicker: "FP", TimeMs: 21_600_000,
			Inputs:  []gamedata.MaterialAmount{{Ticker: "GRN", Amount: 1}, {Ticker: "ALG", Amount: 1}, {Ticker: "MAI", Amount: 1}},
			Outputs: []gamedata.MaterialAmount{{Ticker: "RAT", Amount: 10}},
		},
		{
			RecipeID: "FP#COF", BuildingTicker: "FP", TimeMs: halfDay,
			Inputs:  []gamedata.MaterialAmount{{Ticker: "CAF", Amount: 1}, {Ticker: "H2O", Amount: 1}},
			Outputs: []gamedata.MaterialAmount{{Ticker: "COF", Amount: 4}},
		},
	}
	data.Recipes["HYF"] = []gamedata.Recipe{
		{
			RecipeID: "HYF#GRN", BuildingTicker: "HYF", TimeMs: halfDay,
			Inputs:  []gamedata.MaterialAmount{{Ticker: "H2O", Amount: 20}, {Ticker: "NUT", Amount: 1}},
			Outputs: []gamedata.MaterialAmount{{Ticker: "GRN", Amount: 12}},
		},
		{
			RecipeID: "HYF#VEG", BuildingTicker: "HYF", TimeMs: 28_800_000,
			Inputs:  []gamedata.MaterialAmount{{Ticker: "H2O", Amount: 15}, {Ticker: "NUT", Amount: 1}},
			Outputs: []gamedata.MaterialAmount{{Ticker: "VEG", Amount: 8}},
		},
	}
	data.Recipes["INC"] = []gamedata.Recipe{
		{
			RecipeID: "INC#C", BuildingTicker: "INC", TimeMs: 14_400_000,
			Inputs:  []gamedata.MaterialAmount{{Ticker: "HCP", Amount: 4}, {Ticker: "GRN", Amount: 2}},
			Outputs: []gamedata.MaterialAmount{{Ticker: "C", Amount: 4}, {Ticker: "ASH", Amount: 1}},
		},
		{
			RecipeID: "INC#FLX", BuildingTicker: "INC", TimeMs: 21_600_000,
			Inputs:  []gamedata.MaterialAmount{{Ticker: "LST", Amount: 2}, {Ticker: "S", Amount: 1}},
			Outputs: []gamedata.MaterialAmount{{Ticker: "FLX", Amount: 6}, {Ticker: "O", Amount: 1}},
		},
	}

	universe := map[string]gamedata.Exchange{
		"RAT.PP30D_UNIVERSE": {TickerID: "RAT.PP30D_UNIVERSE", Ask: 120, Bid: 105, PriceAverage: 112},
		"COF.PP30D_UNIVERSE": {TickerID: "COF.PP30D_UNIVERSE", Ask: 310, Bid: 280, PriceAverage: 296},
		"VEG.PP30D_UNIVERSE": {TickerID: "VEG.PP30D_UNIVERSE", Ask: 140, Bid: 120, PriceAverage: 131},
		"C.PP30D_UNIVERSE":   {TickerID: "C.PP30D_UNIVERSE", Ask: 420, Bid: 390, PriceAverage: 404},
		"FLX.PP30D_UNIVERSE": {TickerID: "FLX.PP30D_UNIVERSE", Ask: 230, Bid: 210, PriceAverage: 221},
		"FEO.PP30D_UNIVERSE": {TickerID: "FEO.PP30D_UNIVERSE", Ask: 95, Bid: 80, PriceAverage: 87},
		"SIO.PP30D_UNIVERSE": {TickerID: "SIO.PP30D_UNIVERSE", Ask: 70, Bid: 55, PriceAverage: 62},
		"H2O.PP30D_UNIVERSE": {TickerID: "H2O.PP30D_UNIVERSE", Ask: 60, Bid: 45, PriceAverage: 52},
		"CAF.PP30D_UNIVERSE": {TickerID: "CAF.PP30D_UNIVERSE", Ask: 520, Bid: 470, PriceAverage: 495},
		"NUT.PP30D_UNIVERSE": {TickerID: "NUT.PP30D_UNIVERSE", Ask: 160, Bid: 130, PriceAverage: 144},
		"HCP.PP30D_UNIVERSE": {TickerID: "HCP.PP30D_UNIVERSE", Ask: 110, Bid: 90, PriceAverage: 99},
		"LST.PP30D_UNIVERSE": {TickerID: "LST.PP30D_UNIVERSE", Ask: 85, Bid: 65, PriceAverage: 74},
		"S.PP30D_UNIVERSE":   {TickerID: "S.PP30D_UNIVERSE", Ask: 130, Bid: 110, PriceAverage: 119},
		"BSE.PP30D_UNIVERSE": {TickerID: "BSE.PP30D_UNIVERSE", Ask: 1100, Bid: 950, PriceAverage: 1020},
		"BBH.PP30D_UNIVERSE": {TickerID: "BBH.PP30D_UNIVERSE", Ask: 1350, Bid: 1200, PriceAverage: 1270},
		"BDE.PP30D_UNIVERSE": {TickerID: "BDE.PP30D_UNIVERSE", Ask: 1250, Bid: 1080, PriceAverage: 1160},
		"TRU.PP30D_UNIVERSE": {TickerID: "TRU.PP30D_UNIVERSE", Ask: 310, Bid: 260, PriceAverage: 284},
		"MCG.PP30D_UNIVERSE": {TickerID: "MCG.PP30D_UNIVERSE", Ask: 35, Bid: 25, PriceAverage: 29},
	}
	for id, e := range universe {
		exchange := e
		data.Exchanges[id] = &exchange
	}

	data.Planets[HarmoniaPlanetID] = &gamedata.Planet{
		NaturalID: HarmoniaPlanetID,
		Name:      "Harmonia",
		Resources: []gamedata.PlanetResource{
			{Ticker: "FEO", Type: gamedata.ResourceMineral, Factor: 0.5},
			{Ticker: "SIO", Type: gamedata.ResourceMineral, Factor: 0.25},
			{Ticker: "H2O", Type: gamedata.ResourceLiquid, Factor: 0.8},
		},
		Surface:     true,
		Gravity:     1.0,
		Pressure:    1.0,
		Temperature: 20,
		COGCProgram: gamedata.COGCResourceExtraction,
	}

	return data
}

// HarmoniaDraft builds the plan fixture matching HarmoniaCatalog: a three
// permit extraction base with 2170 pioneers demanded, 994 area used and 18
// distinct materials flowing daily.
func HarmoniaDraft() *plan.Draft {
	draft := plan.NewDraft(HarmoniaPlanetID)
	draft.Name = "Harmonia Extraction"
	draft.COGC = gamedata.COGCResourceExtraction
	draft.Permits = 3
	draft.Workforce[gamedata.WorkforcePioneer] = plan.Luxuries{Lux1: true, Lux2: true}
	draft.Infrastructure[gamedata.InfraHB1] = 20

	draft.Buildings = []plan.Building{
		{Name: "EXT", Amount: 1, ActiveRecipes: []plan.ActiveRecipe{
			{RecipeID: "EXT#FEO", Amount: 1},
			{RecipeID: "EXT#SIO", Amount: 1},
		}},
		{Name: "FP", Amount: 19, ActiveRecipes: []plan.ActiveRecipe{
			{RecipeID: "FP#RAT", Amount: 1},
			{RecipeID: "FP#COF", Amount: 1},
		}},
		{Name: "HYF", Amount: 11, ActiveRecipes: []plan.ActiveRecipe{
			{RecipeID: "HYF#GRN", Amount: 1},
			{RecipeID: "HYF#VEG", Amount: 1},
		}},
		{Name: "INC", Amount: 7, ActiveRecipes: []plan.ActiveRecipe{
			{RecipeID: "INC#C", Amount: 1},
			{RecipeID: "INC#FLX", Amount: 1},
		}},
		{Name: "RIG", Amount: 21, ActiveRecipes: []plan.ActiveRecipe{
			{RecipeID: "RIG#H2O", Amount: 1},
		}},
	}

	return draft
}
