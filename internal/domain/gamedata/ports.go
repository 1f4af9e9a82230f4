package gamedata

import "context"

// ReferenceData supplies immutable-per-refresh catalogs of game reference
// entities. Implementations are read-only for all consumers; only the
// refresh machinery writes to the underlying caches.
type ReferenceData interface {
	Material(ticker string) (*Material, error)
	Building(ticker string) (*Building, error)
	RecipesFor(buildingTicker string) ([]Recipe, error)
	Exchange(tickerID string) (*Exchange, error)
	Planet(ctx context.Context, naturalID string) (*Planet, error)
}
