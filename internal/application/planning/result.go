package planning

import (
	"github.com/andrescamacho/prunplan/internal/domain/gamedata"
	"github.com/andrescamacho/prunplan/internal/domain/materialio"
)

// WorkforceResult is the demand/supply picture of one workforce tier.
type WorkforceResult struct {
	Required   int
	Capacity   int
	Efficiency float64
	Lux1       bool
	Lux2       bool
}

// RecipeResult is one resolved active recipe with its daily material flow.
type RecipeResult struct {
	RecipeID string
	Amount   int
	DailyIO  []materialio.Minimal
}

// BuildingResult is one building entry resolved against reference data,
// with its computable recipe options and resolved active recipes.
type BuildingResult struct {
	Name          string
	Amount        int
	Efficiency    float64
	RecipeOptions []gamedata.Recipe
	ActiveRecipes []RecipeResult
}

// ProductionResult is the per-building breakdown of the plan.
type ProductionResult struct {
	Buildings []BuildingResult
}

// AreaResult is the plan's area usage. AreaLeft may be negative and is
// reported as-is.
type AreaResult struct {
	AreaUsed  int
	AreaTotal int
	AreaLeft  int
	Permits   int
}

// Overview holds the plan's monetary summary. ROI is in days and +Inf when
// the daily profit is non-positive.
type Overview struct {
	DailyCost        float64
	DailyProfit      float64
	ConstructionCost float64
	ROI              float64
}

// Visitation holds storage-related figures. StorageFilled is a percentage
// of the binding storage constraint (weight or volume).
type Visitation struct {
	StorageFilled float64
}

// Result is the fully derived view of one plan draft against one reference
// data snapshot and price-source selection. It owns nothing; a recompute
// replaces it wholesale.
type Result struct {
	CorpHQ bool
	COGC   gamedata.COGCProgram

	Production            ProductionResult
	Workforce             map[gamedata.WorkforceType]WorkforceResult
	Area                  AreaResult
	MaterialIO            []materialio.PricedMaterial
	ConstructionMaterials []materialio.Material
	Overview              Overview
	Visitation            Visitation
}
