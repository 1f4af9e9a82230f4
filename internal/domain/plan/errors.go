package plan

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when a building or recipe index does
	// not exist in the current draft
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNoRecipeOptions is returned when a recipe is added to a building
	// that has no computable recipe options on its planet
	ErrNoRecipeOptions = errors.New("building has no recipe options")
)

// IndexOutOfRangeError reports an invalid building or recipe index passed
// to a mutation handler.
type IndexOutOfRangeError struct {
	What  string
	Index int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s at index %d does not exist", e.What, e.Index)
}

func (e *IndexOutOfRangeError) Unwrap() error {
	return ErrIndexOutOfRange
}
