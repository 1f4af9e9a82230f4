package gamedata

import (
	"context"
	"time"

	domain "github.com/andrescamacho/prunplan/internal/domain/gamedata"
)

// Source fetches reference catalogs from the upstream game data API.
type Source interface {
	FetchMaterials(ctx context.Context) ([]domain.Material, error)
	FetchBuildings(ctx context.Context) ([]domain.Building, error)
	FetchRecipes(ctx context.Context) ([]domain.Recipe, error)
	FetchExchanges(ctx context.Context) ([]domain.Exchange, error)
	FetchPlanet(ctx context.Context, naturalID string) (*domain.Planet, error)
}

// Repository is the local cache of reference catalogs. Full catalogs are
// replaced wholesale on refresh; planets are cached one by one.
type Repository interface {
	Materials(ctx context.Context) ([]domain.Material, error)
	ReplaceMaterials(ctx context.Context, materials []domain.Material) error

	Buildings(ctx context.Context) ([]domain.Building, error)
	ReplaceBuildings(ctx context.Context, buildings []domain.Building) error

	Recipes(ctx context.Context) ([]domain.Recipe, error)
	ReplaceRecipes(ctx context.Context, recipes []domain.Recipe) error

	Exchanges(ctx context.Context) ([]domain.Exchange, error)
	ReplaceExchanges(ctx context.Context, exchanges []domain.Exchange) error

	Planet(ctx context.Context, naturalID string) (*domain.Planet, error)
	UpsertPlanet(ctx context.Context, planet *domain.Planet) error
	PlanetIDs(ctx context.Context) ([]string, error)

	LastRefreshed(ctx context.Context, entity string) (*time.Time, error)
	SetLastRefreshed(ctx context.Context, entity string, at time.Time) error
}

// Refresh bookkeeping keys. Planets are tracked per natural id.
const (
	EntityMaterials = "materials"
	EntityBuildings = "buildings"
	EntityRecipes   = "recipes"
	EntityExchanges = "exchanges"
	EntityPlanet    = "planet:" // + natural id
)
