package planning

import (
	"errors"
	"fmt"
)

// ErrRecipeNotFound is returned when an active recipe id is not among the
// recipe options computable for its building on the plan's planet
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeNotFoundError reports a plan referencing a recipe that is no longer
// valid for its building and planet. This is fatal for the recompute; the
// plan is structurally invalid until the draft is fixed.
type RecipeNotFoundError struct {
	BuildingTicker string
	RecipeID       string
}

func (e *RecipeNotFoundError) Error() string {
	return fmt.Sprintf("recipe %q is not available for building %s", e.RecipeID, e.BuildingTicker)
}

func (e *RecipeNotFoundError) Unwrap() error {
	return ErrRecipeNotFound
}
