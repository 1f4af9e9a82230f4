package planning

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/andrescamacho/prunplan/internal/domain/gamedata"
	"github.com/andrescamacho/prunplan/internal/domain/materialio"
	"github.com/andrescamacho/prunplan/internal/domain/plan"
	"github.com/andrescamacho/prunplan/internal/domain/pricing"
	"github.com/andrescamacho/prunplan/pkg/utils"
)

const msPerDay = 86_400_000

// Workforce efficiency contributions. A tier with both luxuries supplied
// and full housing works at 100%.
const (
	workforceBaseEfficiency = 0.77
	lux1Efficiency          = 0.13
	lux2Efficiency          = 0.10
)

// Production bonuses.
const (
	cogcExpertiseBonus = 0.25
	cogcWorkforceBonus = 0.10
	corpHQBonus        = 0.10
)

// expertEfficiencyGain is the cumulative production bonus for 0..5 experts
// of a building's expertise.
var expertEfficiencyGain = [6]float64{0, 0.0306, 0.0696, 0.1248, 0.1974, 0.2840}

// extractionRates drive the synthetic recipes of resource extractors:
// daily units per building = concentration * 100 * rate.
var extractionRates = map[string]struct {
	resource gamedata.ResourceType
	rate     float64
}{
	"EXT": {gamedata.ResourceMineral, 0.7},
	"RIG": {gamedata.ResourceLiquid, 0.7},
	"COL": {gamedata.ResourceGaseous, 0.6},
}

// Compute derives the full plan result from one draft, one reference data
// snapshot and one price resolver. It is pure: same inputs, same result.
// Reference-data lookup misses and unknown active recipe ids fail the whole
// recompute; price lookups never fail.
func Compute(
	ctx context.Context,
	draft *plan.Draft,
	data gamedata.ReferenceData,
	resolver *pricing.Resolver,
) (*Result, error) {
	planet, err := data.Planet(ctx, draft.PlanetID)
	if err != nil {
		return nil, fmt.Errorf("compute plan: %w", err)
	}

	buildings := make(map[string]*gamedata.Building, len(draft.Buildings))
	for _, entry := range draft.Buildings {
		if _, ok := buildings[entry.Name]; ok {
			continue
		}
		b, err := data.Building(entry.Name)
		if err != nil {
			return nil, fmt.Errorf("compute plan: building %q: %w", entry.Name, err)
		}
		buildings[entry.Name] = b
	}

	workforce := computeWorkforce(draft, buildings)

	production, flows, err := computeProduction(draft, planet, data, buildings, workforce)
	if err != nil {
		return nil, err
	}

	combined := materialio.CombineMinimal(flows...)
	enhanced, err := materialio.EnhanceMinimal(combined, data)
	if err != nil {
		return nil, fmt.Errorf("compute plan: %w", err)
	}
	priced := resolver.EnhanceWithPrices(enhanced)

	area, err := computeArea(draft, data, buildings)
	if err != nil {
		return nil, err
	}

	construction, err := computeConstruction(draft, planet, data, buildings)
	if err != nil {
		return nil, err
	}

	overview := computeOverview(resolver, combined, priced, construction)
	visitation := computeVisitation(draft, enhanced)

	return &Result{
		CorpHQ:                draft.CorpHQ,
		COGC:                  draft.COGC,
		Production:            production,
		Workforce:             workforce,
		Area:                  area,
		MaterialIO:            priced,
		ConstructionMaterials: construction,
		Overview:              overview,
		Visitation:            visitation,
	}, nil
}

// RecipeOptionsFor returns the recipes an entry of the given building ticker
// can run on a planet. Extractors get synthetic options from the planet's
// resource deposits; everything else reads the reference recipe catalog. A
// building without any catalog entry simply has no options.
func RecipeOptionsFor(
	ticker string,
	planet *gamedata.Planet,
	data gamedata.ReferenceData,
) ([]gamedata.Recipe, error) {
	if ext, ok := extractionRates[ticker]; ok {
		options := make([]gamedata.Recipe, 0)
		for _, resource := range planet.Resources {
			if resource.Type != ext.resource {
				continue
			}
			options = append(options, gamedata.Recipe{
				RecipeID:       fmt.Sprintf("%s#%s", ticker, resource.Ticker),
				BuildingTicker: ticker,
				TimeMs:         msPerDay,
				Outputs: []gamedata.MaterialAmount{
					{Ticker: resource.Ticker, Amount: resource.Factor * 100 * ext.rate},
				},
			})
		}
		return options, nil
	}

	options, err := data.RecipesFor(ticker)
	if err != nil {
		if errors.Is(err, gamedata.ErrRecipeNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("recipe options for %s: %w", ticker, err)
	}
	return options, nil
}

// computeWorkforce sums per-tier demand over all building entries and
// housing capacity over all infrastructure, then derives each tier's
// efficiency from luxury supply and housing coverage.
func computeWorkforce(
	draft *plan.Draft,
	buildings map[string]*gamedata.Building,
) map[gamedata.WorkforceType]WorkforceResult {
	result := make(map[gamedata.WorkforceType]WorkforceResult, len(gamedata.WorkforceTypes))

	for _, t := range gamedata.WorkforceTypes {
		required := 0
		for _, entry := range draft.Buildings {
			required += buildings[entry.Name].WorkforceDemand(t) * entry.Amount
		}

		capacity := 0
		for infra, amount := range draft.Infrastructure {
			capacity += gamedata.HabitationCapacity(infra, t) * amount
		}

		lux := draft.Workforce[t]
		efficiency := workforceBaseEfficiency
		if lux.Lux1 {
			efficiency += lux1Efficiency
		}
		if lux.Lux2 {
			efficiency += lux2Efficiency
		}
		efficiency *= utils.Ratio(float64(capacity), float64(required))

		result[t] = WorkforceResult{
			Required:   required,
			Capacity:   capacity,
			Efficiency: efficiency,
			Lux1:       lux.Lux1,
			Lux2:       lux.Lux2,
		}
	}

	return result
}

// buildingEfficiency combines the workforce-weighted tier efficiency with
// expert, COGC and headquarter bonuses for one building.
func buildingEfficiency(
	draft *plan.Draft,
	building *gamedata.Building,
	workforce map[gamedata.WorkforceType]WorkforceResult,
) float64 {
	var weighted, totalDemand float64
	for _, t := range gamedata.WorkforceTypes {
		demand := float64(building.WorkforceDemand(t))
		weighted += demand * workforce[t].Efficiency
		totalDemand += demand
	}

	efficiency := 1.0
	if totalDemand > 0 {
		efficiency = weighted / totalDemand
	}

	if building.Expertise != "" {
		efficiency *= 1 + expertEfficiencyGain[utils.Clamp(draft.Experts[building.Expertise], 0, 5)]
		if draft.COGC == gamedata.ProgramForExpertise(building.Expertise) {
			efficiency *= 1 + cogcExpertiseBonus
		}
	}

	if dominant, ok := building.DominantWorkforce(); ok &&
		draft.COGC == gamedata.ProgramForWorkforce(dominant) {
		efficiency *= 1 + cogcWorkforceBonus
	}

	if draft.CorpHQ {
		efficiency *= 1 + corpHQBonus
	}

	return efficiency
}

// computeProduction resolves every building entry's recipe options and
// active recipes and emits the daily material flow of each resolved recipe.
func computeProduction(
	draft *plan.Draft,
	planet *gamedata.Planet,
	data gamedata.ReferenceData,
	buildings map[string]*gamedata.Building,
	workforce map[gamedata.WorkforceType]WorkforceResult,
) (ProductionResult, [][]materialio.Minimal, error) {
	results := make([]BuildingResult, 0, len(draft.Buildings))
	flows := make([][]materialio.Minimal, 0)

	for _, entry := range draft.Buildings {
		options, err := RecipeOptionsFor(entry.Name, planet, data)
		if err != nil {
			return ProductionResult{}, nil, fmt.Errorf("compute plan: %w", err)
		}

		efficiency := buildingEfficiency(draft, buildings[entry.Name], workforce)

		active := make([]RecipeResult, 0, len(entry.ActiveRecipes))
		for _, activeRecipe := range entry.ActiveRecipes {
			recipe := findRecipe(options, activeRecipe.RecipeID)
			if recipe == nil {
				return ProductionResult{}, nil, fmt.Errorf("compute plan: %w",
					&RecipeNotFoundError{BuildingTicker: entry.Name, RecipeID: activeRecipe.RecipeID})
			}

			scale := float64(msPerDay) / float64(recipe.TimeMs) * efficiency *
				float64(activeRecipe.Amount) * float64(entry.Amount)

			flow := make([]materialio.Minimal, 0, len(recipe.Inputs)+len(recipe.Outputs))
			for _, input := range recipe.Inputs {
				flow = append(flow, materialio.Minimal{Ticker: input.Ticker, Input: input.Amount * scale})
			}
			for _, output := range recipe.Outputs {
				flow = append(flow, materialio.Minimal{Ticker: output.Ticker, Output: output.Amount * scale})
			}

			flows = append(flows, flow)
			active = append(active, RecipeResult{
				RecipeID: activeRecipe.RecipeID,
				Amount:   activeRecipe.Amount,
				DailyIO:  flow,
			})
		}

		results = append(results, BuildingResult{
			Name:          entry.Name,
			Amount:        entry.Amount,
			Efficiency:    efficiency,
			RecipeOptions: options,
			ActiveRecipes: active,
		})
	}

	return ProductionResult{Buildings: results}, flows, nil
}

func findRecipe(options []gamedata.Recipe, recipeID string) *gamedata.Recipe {
	for i := range options {
		if options[i].RecipeID == recipeID {
			return &options[i]
		}
	}
	return nil
}

// computeArea sums the footprint of buildings and infrastructure plus the
// planetary core module. AreaLeft is intentionally not clamped.
func computeArea(
	draft *plan.Draft,
	data gamedata.ReferenceData,
	buildings map[string]*gamedata.Building,
) (AreaResult, error) {
	used := gamedata.CoreModuleArea

	for _, entry := range draft.Buildings {
		used += buildings[entry.Name].AreaCost * entry.Amount
	}

	for _, infra := range gamedata.InfrastructureTypes {
		amount := draft.Infrastructure[infra]
		if amount == 0 {
			continue
		}
		b, err := data.Building(string(infra))
		if err != nil {
			return AreaResult{}, fmt.Errorf("compute plan: infrastructure %s: %w", infra, err)
		}
		used += b.AreaCost * amount
	}

	total := gamedata.BaseAreaPerPermit + gamedata.BaseAreaPerPermit*draft.Permits

	return AreaResult{
		AreaUsed:  used,
		AreaTotal: total,
		AreaLeft:  total - used,
		Permits:   draft.Permits,
	}, nil
}

// computeConstruction aggregates the one-time build bill of every building
// and infrastructure unit, including the planet-condition extras each unit
// needs on this planet.
func computeConstruction(
	draft *plan.Draft,
	planet *gamedata.Planet,
	data gamedata.ReferenceData,
	buildings map[string]*gamedata.Building,
) ([]materialio.Material, error) {
	bills := make([][]materialio.Minimal, 0)

	addBill := func(b *gamedata.Building, amount int) {
		bill := make([]materialio.Minimal, 0, len(b.Costs))
		for _, cost := range b.Costs {
			bill = append(bill, materialio.Minimal{Ticker: cost.Ticker, Input: cost.Amount * float64(amount)})
		}
		for _, extra := range planetConstructionExtras(planet, b.AreaCost) {
			bill = append(bill, materialio.Minimal{Ticker: extra.Ticker, Input: extra.Amount * float64(amount)})
		}
		bills = append(bills, bill)
	}

	for _, entry := range draft.Buildings {
		addBill(buildings[entry.Name], entry.Amount)
	}

	for _, infra := range gamedata.InfrastructureTypes {
		amount := draft.Infrastructure[infra]
		if amount == 0 {
			continue
		}
		b, err := data.Building(string(infra))
		if err != nil {
			return nil, fmt.Errorf("compute plan: infrastructure %s: %w", infra, err)
		}
		addBill(b, amount)
	}

	construction, err := materialio.EnhanceMinimal(materialio.CombineMinimal(bills...), data)
	if err != nil {
		return nil, fmt.Errorf("compute plan: %w", err)
	}
	return construction, nil
}

// planetConstructionExtras returns the additional construction materials one
// building unit needs under the planet's environment.
func planetConstructionExtras(planet *gamedata.Planet, area int) []gamedata.MaterialAmount {
	extras := make([]gamedata.MaterialAmount, 0, 4)

	if planet.Surface {
		extras = append(extras, gamedata.MaterialAmount{Ticker: "MCG", Amount: float64(area) * 4})
	} else {
		extras = append(extras, gamedata.MaterialAmount{Ticker: "AEF", Amount: math.Ceil(float64(area) / 3)})
	}

	if planet.Gravity < 0.25 {
		extras = append(extras, gamedata.MaterialAmount{Ticker: "MGC", Amount: 1})
	} else if planet.Gravity > 2.5 {
		extras = append(extras, gamedata.MaterialAmount{Ticker: "BL", Amount: 1})
	}

	if planet.Pressure < 0.25 {
		extras = append(extras, gamedata.MaterialAmount{Ticker: "SEA", Amount: float64(area)})
	} else if planet.Pressure > 2.0 {
		extras = append(extras, gamedata.MaterialAmount{Ticker: "HSE", Amount: 1})
	}

	if planet.Temperature < -25 {
		extras = append(extras, gamedata.MaterialAmount{Ticker: "INS", Amount: float64(area) * 10})
	} else if planet.Temperature > 75 {
		extras = append(extras, gamedata.MaterialAmount{Ticker: "TSH", Amount: 1})
	}

	return extras
}

// computeOverview derives daily cost, daily profit and ROI. Daily flows are
// already per-day, so the cost is a plain valuation of the net buy side.
func computeOverview(
	resolver *pricing.Resolver,
	combined []materialio.Minimal,
	priced []materialio.PricedMaterial,
	construction []materialio.Material,
) Overview {
	dailyCost := -resolver.MaterialIOTotalPrice(combined, pricing.DirectionBuy)

	var dailyProfit float64
	for _, item := range priced {
		dailyProfit += item.Price
	}

	bill := make([]materialio.Minimal, 0, len(construction))
	for _, item := range construction {
		bill = append(bill, materialio.Minimal{Ticker: item.Ticker, Input: item.Input, Output: item.Output})
	}
	constructionCost := -resolver.MaterialIOTotalPrice(bill, pricing.DirectionBuy)

	roi := math.Inf(1)
	if dailyProfit > 0 {
		roi = constructionCost / dailyProfit
	}

	return Overview{
		DailyCost:        dailyCost,
		DailyProfit:      dailyProfit,
		ConstructionCost: constructionCost,
		ROI:              roi,
	}
}

// computeVisitation reports how full the base storage runs on the net
// production between visits, whichever of weight and volume binds first.
func computeVisitation(draft *plan.Draft, enhanced []materialio.Material) Visitation {
	capacityWeight := gamedata.BaseStorageWeight + gamedata.STOStorageWeight*float64(draft.Infrastructure[gamedata.InfraSTO])
	capacityVolume := gamedata.BaseStorageVolume + gamedata.STOStorageVolume*float64(draft.Infrastructure[gamedata.InfraSTO])

	var weight, volume float64
	for _, item := range enhanced {
		if item.Delta > 0 {
			weight += item.TotalWeight
			volume += item.TotalVolume
		}
	}

	filled := math.Max(weight/capacityWeight, volume/capacityVolume) * 100

	return Visitation{StorageFilled: filled}
}
