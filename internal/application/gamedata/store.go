package gamedata

import (
	"context"
	"fmt"

	domain "github.com/andrescamacho/prunplan/internal/domain/gamedata"
)

// Store is the in-memory reference data snapshot all plan calculations read
// from. It is hydrated once from the repository; planets load lazily and
// fall back to the upstream source on a cache miss, which is the one lookup
// that may block.
type Store struct {
	materials map[string]domain.Material
	buildings map[string]domain.Building
	recipes   map[string][]domain.Recipe
	exchanges map[string]domain.Exchange
	planets   map[string]domain.Planet

	repo   Repository
	source Source
}

// NewStore creates an empty store. Call Load before handing it to the
// engine. Source may be nil; planet cache misses then fail instead of
// fetching.
func NewStore(repo Repository, source Source) *Store {
	return &Store{
		materials: make(map[string]domain.Material),
		buildings: make(map[string]domain.Building),
		recipes:   make(map[string][]domain.Recipe),
		exchanges: make(map[string]domain.Exchange),
		planets:   make(map[string]domain.Planet),
		repo:      repo,
		source:    source,
	}
}

// Load hydrates all full catalogs from the repository.
func (s *Store) Load(ctx context.Context) error {
	materials, err := s.repo.Materials(ctx)
	if err != nil {
		return fmt.Errorf("load materials: %w", err)
	}
	for _, m := range materials {
		s.materials[m.Ticker] = m
	}

	buildings, err := s.repo.Buildings(ctx)
	if err != nil {
		return fmt.Errorf("load buildings: %w", err)
	}
	for _, b := range buildings {
		s.buildings[b.Ticker] = b
	}

	recipes, err := s.repo.Recipes(ctx)
	if err != nil {
		return fmt.Errorf("load recipes: %w", err)
	}
	for _, r := range recipes {
		s.recipes[r.BuildingTicker] = append(s.recipes[r.BuildingTicker], r)
	}

	exchanges, err := s.repo.Exchanges(ctx)
	if err != nil {
		return fmt.Errorf("load exchanges: %w", err)
	}
	for _, e := range exchanges {
		s.exchanges[e.TickerID] = e
	}

	return nil
}

// Material implements gamedata.ReferenceData.
func (s *Store) Material(ticker string) (*domain.Material, error) {
	m, ok := s.materials[ticker]
	if !ok {
		return nil, fmt.Errorf("material %q: %w", ticker, domain.ErrMaterialNotFound)
	}
	return &m, nil
}

// Building implements gamedata.ReferenceData.
func (s *Store) Building(ticker string) (*domain.Building, error) {
	b, ok := s.buildings[ticker]
	if !ok {
		return nil, fmt.Errorf("building %q: %w", ticker, domain.ErrBuildingNotFound)
	}
	return &b, nil
}

// RecipesFor implements gamedata.ReferenceData.
func (s *Store) RecipesFor(buildingTicker string) ([]domain.Recipe, error) {
	recipes, ok := s.recipes[buildingTicker]
	if !ok {
		return nil, fmt.Errorf("recipes for %q: %w", buildingTicker, domain.ErrRecipeNotFound)
	}
	return recipes, nil
}

// Exchange implements gamedata.ReferenceData.
func (s *Store) Exchange(tickerID string) (*domain.Exchange, error) {
	e, ok := s.exchanges[tickerID]
	if !ok {
		return nil, fmt.Errorf("exchange %q: %w", tickerID, domain.ErrExchangeNotFound)
	}
	return &e, nil
}

// Planet implements gamedata.ReferenceData. Misses go to the repository
// cache first and then to the upstream source.
func (s *Store) Planet(ctx context.Context, naturalID string) (*domain.Planet, error) {
	if p, ok := s.planets[naturalID]; ok {
		return &p, nil
	}

	if p, err := s.repo.Planet(ctx, naturalID); err == nil && p != nil {
		s.planets[naturalID] = *p
		return p, nil
	}

	if s.source == nil {
		return nil, fmt.Errorf("planet %q: %w", naturalID, domain.ErrPlanetNotFound)
	}

	p, err := s.source.FetchPlanet(ctx, naturalID)
	if err != nil {
		return nil, fmt.Errorf("planet %q: %w", naturalID, err)
	}
	if err := s.repo.UpsertPlanet(ctx, p); err != nil {
		return nil, fmt.Errorf("cache planet %q: %w", naturalID, err)
	}
	s.planets[naturalID] = *p
	return p, nil
}
