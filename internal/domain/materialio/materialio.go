package materialio

import (
	"fmt"
	"sort"

	"github.com/andrescamacho/prunplan/internal/domain/gamedata"
)

// Minimal is the raw per-source material flow: how much of one ticker a
// source consumes and produces, with no derived fields.
type Minimal struct {
	Ticker string
	Input  float64
	Output float64
}

// Material is a Minimal enhanced with delta, weight and volume information.
type Material struct {
	Ticker           string
	Input            float64
	Output           float64
	Delta            float64
	IndividualWeight float64
	IndividualVolume float64
	TotalWeight      float64
	TotalVolume      float64
}

// PricedMaterial is a Material carrying the monetary value of its delta.
// Negative deltas are valued at buy prices, positive deltas at sell prices.
type PricedMaterial struct {
	Material
	Price float64
}

// MaterialLookup resolves a material ticker to its reference definition.
type MaterialLookup interface {
	Material(ticker string) (*gamedata.Material, error)
}

// CombineMinimal flattens any number of Minimal slices into one slice with
// input and output summed per distinct ticker. Output order is the order of
// each ticker's first occurrence; combination is associative, so regrouping
// the inputs never changes the per-ticker totals.
func CombineMinimal(arrays ...[]Minimal) []Minimal {
	index := make(map[string]int)
	combined := make([]Minimal, 0)

	for _, arr := range arrays {
		for _, entry := range arr {
			if entry.Ticker == "" {
				continue
			}
			i, ok := index[entry.Ticker]
			if !ok {
				index[entry.Ticker] = len(combined)
				combined = append(combined, Minimal{Ticker: entry.Ticker})
				i = len(combined) - 1
			}
			combined[i].Input += entry.Input
			combined[i].Output += entry.Output
		}
	}

	return combined
}

// EnhanceMinimal enhances combined flows with per-material weight and volume
// data. The result is sorted ticker-ascending. A ticker missing from the
// reference data is a hard failure: the flow cannot be valued or stored
// without it.
func EnhanceMinimal(data []Minimal, materials MaterialLookup) ([]Material, error) {
	enhanced := make([]Material, 0, len(data))

	for _, minimal := range data {
		mat, err := materials.Material(minimal.Ticker)
		if err != nil {
			return nil, fmt.Errorf("enhance material io for %q: %w", minimal.Ticker, err)
		}

		delta := minimal.Output - minimal.Input
		enhanced = append(enhanced, Material{
			Ticker:           minimal.Ticker,
			Input:            minimal.Input,
			Output:           minimal.Output,
			Delta:            delta,
			IndividualWeight: mat.Weight,
			IndividualVolume: mat.Volume,
			TotalWeight:      delta * mat.Weight,
			TotalVolume:      delta * mat.Volume,
		})
	}

	sort.SliceStable(enhanced, func(i, j int) bool {
		return enhanced[i].Ticker < enhanced[j].Ticker
	})

	return enhanced, nil
}
