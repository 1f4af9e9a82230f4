package plan

import (
	"context"
	"fmt"
	"strings"

	"github.com/andrescamacho/prunplan/internal/domain/gamedata"
	"github.com/andrescamacho/prunplan/pkg/utils"
)

// LuxSlot selects one of the two luxury supply flags.
type LuxSlot string

const (
	LuxSlot1 LuxSlot = "lux1"
	LuxSlot2 LuxSlot = "lux2"
)

// BuildingResolver validates a building ticker against reference data. The
// lookup may require a fetch, so it takes a context.
type BuildingResolver interface {
	ResolveBuilding(ctx context.Context, ticker string) (*gamedata.Building, error)
}

// RecipeOptionsProvider exposes the recipe options currently computable for
// a building entry, as derived by the calculation engine.
type RecipeOptionsProvider interface {
	RecipeOptions(buildingIndex int) []gamedata.Recipe
}

// Handlers is the only mutation surface of a Draft. Every successful
// mutation marks the draft modified; callers clear the flag explicitly after
// persisting. Index checks are hard failures while value ranges clamp:
// structural integrity of the draft is load-bearing, values are not.
type Handlers struct {
	draft     *Draft
	buildings BuildingResolver
	options   RecipeOptionsProvider
	modified  bool
}

// NewHandlers wires mutation handlers to a draft. The options provider is
// consulted only by AddBuildingRecipe and may be nil in contexts that never
// add recipes.
func NewHandlers(draft *Draft, buildings BuildingResolver, options RecipeOptionsProvider) *Handlers {
	return &Handlers{draft: draft, buildings: buildings, options: options}
}

// Modified reports whether the draft changed since the last reset.
func (h *Handlers) Modified() bool {
	return h.modified
}

// ResetModified clears the modified flag. Saving does not reset it
// implicitly; that is the caller's call.
func (h *Handlers) ResetModified() {
	h.modified = false
}

// UpdateCorpHQ sets whether the corporation headquarter sits on this planet.
func (h *Handlers) UpdateCorpHQ(value bool) {
	h.draft.CorpHQ = value
	h.modified = true
}

// UpdateCOGC changes the active COGC program.
func (h *Handlers) UpdateCOGC(value gamedata.COGCProgram) {
	h.draft.COGC = value
	h.modified = true
}

// UpdatePermits sets the plan's permits, clamped to the valid range.
func (h *Handlers) UpdatePermits(value int) {
	h.draft.Permits = utils.Clamp(value, gamedata.PermitMin, gamedata.PermitMax)
	h.modified = true
}

// UpdateWorkforceLux sets one luxury supply flag for one workforce tier.
func (h *Handlers) UpdateWorkforceLux(workforce gamedata.WorkforceType, slot LuxSlot, value bool) {
	lux := h.draft.Workforce[workforce]
	if slot == LuxSlot1 {
		lux.Lux1 = value
	} else {
		lux.Lux2 = value
	}
	h.draft.Workforce[workforce] = lux
	h.modified = true
}

// UpdateExpert sets the expert count for one specialization, clamped to the
// valid range.
func (h *Handlers) UpdateExpert(expert gamedata.ExpertType, value int) {
	h.draft.Experts[expert] = utils.Clamp(value, gamedata.ExpertMin, gamedata.ExpertMax)
	h.modified = true
}

// UpdateInfrastructure sets the unit count of one infrastructure building,
// creating the entry when it was absent.
func (h *Handlers) UpdateInfrastructure(infra gamedata.InfrastructureType, value int) {
	h.draft.Infrastructure[infra] = value
	h.modified = true
}

// UpdateBuildingAmount sets the unit count of the building at index.
func (h *Handlers) UpdateBuildingAmount(index int, value int) error {
	if err := h.checkBuildingIndex(index); err != nil {
		return err
	}
	h.draft.Buildings[index].Amount = value
	h.modified = true
	return nil
}

// DeleteBuilding removes the building entry at index.
func (h *Handlers) DeleteBuilding(index int) error {
	if err := h.checkBuildingIndex(index); err != nil {
		return err
	}
	h.draft.Buildings = append(h.draft.Buildings[:index], h.draft.Buildings[index+1:]...)
	h.modified = true
	return nil
}

// CreateBuilding validates a building ticker against reference data and
// appends a new entry with amount 1 and no recipes. This is the one handler
// that may suspend on a reference-data fetch.
func (h *Handlers) CreateBuilding(ctx context.Context, ticker string) error {
	building, err := h.buildings.ResolveBuilding(ctx, ticker)
	if err != nil {
		return fmt.Errorf("create building %q: %w", ticker, err)
	}

	h.draft.Buildings = append(h.draft.Buildings, Building{
		Name:          building.Ticker,
		Amount:        1,
		ActiveRecipes: make([]ActiveRecipe, 0),
	})
	h.modified = true
	return nil
}

// UpdateBuildingRecipeAmount sets the line count of one active recipe.
func (h *Handlers) UpdateBuildingRecipeAmount(buildingIndex, recipeIndex, value int) error {
	if err := h.checkRecipeIndex(buildingIndex, recipeIndex); err != nil {
		return err
	}
	h.draft.Buildings[buildingIndex].ActiveRecipes[recipeIndex].Amount = value
	h.modified = true
	return nil
}

// DeleteBuildingRecipe removes one active recipe from a building.
func (h *Handlers) DeleteBuildingRecipe(buildingIndex, recipeIndex int) error {
	if err := h.checkRecipeIndex(buildingIndex, recipeIndex); err != nil {
		return err
	}
	recipes := h.draft.Buildings[buildingIndex].ActiveRecipes
	h.draft.Buildings[buildingIndex].ActiveRecipes = append(recipes[:recipeIndex], recipes[recipeIndex+1:]...)
	h.modified = true
	return nil
}

// AddBuildingRecipe appends the building's first recipe option as a new
// active recipe with amount 1. Fails when the building has no computable
// options, e.g. an extractor on a planet without the resource.
func (h *Handlers) AddBuildingRecipe(buildingIndex int) error {
	if err := h.checkBuildingIndex(buildingIndex); err != nil {
		return err
	}

	options := h.options.RecipeOptions(buildingIndex)
	if len(options) == 0 {
		return fmt.Errorf("building at index %d: %w", buildingIndex, ErrNoRecipeOptions)
	}

	h.draft.Buildings[buildingIndex].ActiveRecipes = append(
		h.draft.Buildings[buildingIndex].ActiveRecipes,
		ActiveRecipe{RecipeID: options[0].RecipeID, Amount: 1},
	)
	h.modified = true
	return nil
}

// ChangeBuildingRecipe swaps one active recipe to another recipe id.
func (h *Handlers) ChangeBuildingRecipe(buildingIndex, recipeIndex int, recipeID string) error {
	if err := h.checkRecipeIndex(buildingIndex, recipeIndex); err != nil {
		return err
	}
	h.draft.Buildings[buildingIndex].ActiveRecipes[recipeIndex].RecipeID = recipeID
	h.modified = true
	return nil
}

// ChangePlanName sets the plan name, trimmed of surrounding whitespace.
// Empty names are allowed here; the save path rejects them.
func (h *Handlers) ChangePlanName(value string) {
	h.draft.Name = strings.TrimSpace(value)
	h.modified = true
}

// UpdateAutoOptimizeHabs marks the draft modified without storing anything.
// The backend has no field for the auto-optimize-habitations setting yet, so
// this intentionally stays a no-op until it does.
func (h *Handlers) UpdateAutoOptimizeHabs(value bool) {
	_ = value
	h.modified = true
}

func (h *Handlers) checkBuildingIndex(index int) error {
	if index < 0 || index >= len(h.draft.Buildings) {
		return &IndexOutOfRangeError{What: "building", Index: index}
	}
	return nil
}

func (h *Handlers) checkRecipeIndex(buildingIndex, recipeIndex int) error {
	if err := h.checkBuildingIndex(buildingIndex); err != nil {
		return err
	}
	if recipeIndex < 0 || recipeIndex >= len(h.draft.Buildings[buildingIndex].ActiveRecipes) {
		return &IndexOutOfRangeError{What: "recipe", Index: recipeIndex}
	}
	return nil
}
