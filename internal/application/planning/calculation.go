package planning

import (
	"context"

	"github.com/andrescamacho/prunplan/internal/domain/gamedata"
	"github.com/andrescamacho/prunplan/internal/domain/plan"
	"github.com/andrescamacho/prunplan/internal/domain/pricing"
)

// Calculation binds one plan draft to a reference data snapshot and a
// price-source selection and keeps a derived result consistent with them.
// Recomputation is synchronous; the refresh key increments once per
// recompute triggered by a dependency change, so observers can detect a new
// result without deep comparison.
//
// A Calculation belongs to a single editing session and is not safe for
// concurrent use.
type Calculation struct {
	draft     *plan.Draft
	data      gamedata.ReferenceData
	cxs       pricing.CXProvider
	selection pricing.Selection
	handlers  *plan.Handlers

	result     *Result
	err        error
	computed   bool
	stale      bool
	refreshKey uint64
}

// NewCalculation creates a calculation session for one draft. The planet of
// the draft is the planet-preference context for price resolution.
func NewCalculation(
	draft *plan.Draft,
	data gamedata.ReferenceData,
	cxs pricing.CXProvider,
	cxID string,
) *Calculation {
	c := &Calculation{
		draft:     draft,
		data:      data,
		cxs:       cxs,
		selection: pricing.Selection{CXID: cxID, PlanetID: draft.PlanetID},
	}
	c.handlers = plan.NewHandlers(draft, referenceBuildings{data}, c)
	return c
}

// Handlers returns the draft's mutation surface. After mutating, call
// Invalidate so the next Result reflects the change.
func (c *Calculation) Handlers() *plan.Handlers {
	return c.handlers
}

// Invalidate marks the derived result stale after a draft mutation,
// reference data refresh or price-source change.
func (c *Calculation) Invalidate() {
	c.stale = true
}

// SelectCX switches the active CX configuration and invalidates.
func (c *Calculation) SelectCX(cxID string) {
	c.selection.CXID = cxID
	c.Invalidate()
}

// RefreshKey returns the monotonically increasing recompute counter.
func (c *Calculation) RefreshKey() uint64 {
	return c.refreshKey
}

// Result returns the derived plan result, recomputing when stale. A failed
// recompute is fatal for the result: every access returns the stored error
// until a dependency change fixes the draft.
func (c *Calculation) Result(ctx context.Context) (*Result, error) {
	if !c.computed || c.stale {
		resolver := pricing.NewResolver(c.data, c.cxs, c.selection)
		c.result, c.err = Compute(ctx, c.draft, c.data, resolver)
		if c.computed {
			c.refreshKey++
		}
		c.computed = true
		c.stale = false
	}

	if c.err != nil {
		return nil, c.err
	}
	return c.result, nil
}

// RecipeOptions exposes the last computed recipe options of one building
// entry to the mutation handlers. Without a computed result there are no
// options to offer.
func (c *Calculation) RecipeOptions(buildingIndex int) []gamedata.Recipe {
	if c.result == nil || c.err != nil {
		return nil
	}
	if buildingIndex < 0 || buildingIndex >= len(c.result.Production.Buildings) {
		return nil
	}
	return c.result.Production.Buildings[buildingIndex].RecipeOptions
}

// Existing reports whether the draft has a persisted identity.
func (c *Calculation) Existing() bool {
	return c.draft.Existing()
}

// Saveable reports whether saving would change anything: a modified draft
// always is, and a new plan is saveable by definition.
func (c *Calculation) Saveable() bool {
	return c.handlers.Modified() || !c.draft.Existing()
}

// BackendData returns the canonical serialization of the current draft.
func (c *Calculation) BackendData() plan.BackendData {
	return c.draft.ToBackendData()
}

// referenceBuildings adapts the reference data port to the building
// resolver the mutation handlers expect.
type referenceBuildings struct {
	data gamedata.ReferenceData
}

func (r referenceBuildings) ResolveBuilding(_ context.Context, ticker string) (*gamedata.Building, error) {
	return r.data.Building(ticker)
}
