package gamedata

import "errors"

// Domain errors for reference data lookups

var (
	// ErrMaterialNotFound is returned when a material ticker is unknown
	ErrMaterialNotFound = errors.New("material not found")

	// ErrBuildingNotFound is returned when a building ticker is unknown
	ErrBuildingNotFound = errors.New("building not found")

	// ErrRecipeNotFound is returned when no recipes exist for a building
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrExchangeNotFound is returned when an exchange ticker id is unknown
	ErrExchangeNotFound = errors.New("exchange not found")

	// ErrPlanetNotFound is returned when a planet natural id is unknown
	ErrPlanetNotFound = errors.New("planet not found")
)
