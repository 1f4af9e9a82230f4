package materialio

import (
	"math"
	"sort"
)

// PlanContribution is one plan's priced material IO, tagged with the plan's
// identity for empire-wide aggregation.
type PlanContribution struct {
	PlanetID   string
	PlanUUID   string
	PlanName   string
	MaterialIO []PricedMaterial
}

// EmpirePlanet is one plan's share of an empire-wide per-ticker flow.
type EmpirePlanet struct {
	PlanetID string
	PlanUUID string
	PlanName string
	Delta    float64
	Input    float64
	Output   float64
	Price    float64
}

// EmpireEntry is the empire-wide aggregate flow of one ticker. A plan with
// delta 0 consumes everything it produces and appears on both planet lists.
type EmpireEntry struct {
	Ticker        string
	Input         float64
	Output        float64
	Delta         float64
	DeltaPrice    float64
	InputPlanets  []EmpirePlanet
	OutputPlanets []EmpirePlanet
}

// CombineEmpire merges many plans' priced material IO into one per-ticker
// empire balance. DeltaPrice is delta times the value-weighted mean unit
// price over all contributing plans, weighting each plan's |price/delta| by
// its |delta|; with zero total weight the price is 0, never NaN. The result
// is sorted ticker-ascending.
func CombineEmpire(plans []PlanContribution) []EmpireEntry {
	index := make(map[string]int)
	combined := make([]EmpireEntry, 0)

	for _, plan := range plans {
		for _, element := range plan.MaterialIO {
			i, ok := index[element.Ticker]
			if !ok {
				index[element.Ticker] = len(combined)
				combined = append(combined, EmpireEntry{Ticker: element.Ticker})
				i = len(combined) - 1
			}

			combined[i].Input += element.Input
			combined[i].Output += element.Output
			combined[i].Delta += element.Delta

			part := EmpirePlanet{
				PlanetID: plan.PlanetID,
				PlanUUID: plan.PlanUUID,
				PlanName: plan.PlanName,
				Delta:    element.Delta,
				Input:    element.Input,
				Output:   element.Output,
				Price:    element.Price,
			}

			// A fully self-consuming plan sits on both sides of the
			// balance, so delta 0 lands on both lists.
			switch {
			case element.Delta == 0:
				combined[i].InputPlanets = append(combined[i].InputPlanets, part)
				combined[i].OutputPlanets = append(combined[i].OutputPlanets, part)
			default:
				if element.Input > 0 {
					combined[i].InputPlanets = append(combined[i].InputPlanets, part)
				}
				if element.Output > 0 {
					combined[i].OutputPlanets = append(combined[i].OutputPlanets, part)
				}
			}
		}
	}

	for i := range combined {
		combined[i].DeltaPrice = combined[i].Delta * weightedUnitPrice(&combined[i])
	}

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].Ticker < combined[j].Ticker
	})

	return combined
}

// weightedUnitPrice averages |price/delta| over all contributing plans,
// weighted by |delta|. Prices vary between plans with the user's exchange
// preferences, so the empire price has to reflect how much each plan moves.
func weightedUnitPrice(entry *EmpireEntry) float64 {
	planets := make([]EmpirePlanet, 0, len(entry.InputPlanets)+len(entry.OutputPlanets))
	planets = append(planets, entry.InputPlanets...)
	planets = append(planets, entry.OutputPlanets...)

	var sumValue, sumProduct float64
	for _, p := range planets {
		if p.Delta == 0 {
			continue
		}
		value := math.Abs(p.Delta)
		sumValue += value
		sumProduct += math.Abs(p.Price/p.Delta) * value
	}

	if sumValue == 0 {
		return 0
	}
	return sumProduct / sumValue
}
