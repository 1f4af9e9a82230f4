package gamedata

import (
	"context"
	"fmt"
	"time"
)

// Thresholds holds the per-entity staleness limits. An entity whose last
// refresh is older than its threshold is reloaded from the source.
type Thresholds struct {
	Materials time.Duration
	Buildings time.Duration
	Recipes   time.Duration
	Exchanges time.Duration
	Planets   time.Duration
}

// RefreshService keeps the local reference data cache fresh against the
// upstream source under the configured staleness policy. The engine never
// calls this; callers satisfy the policy before running calculations.
type RefreshService struct {
	repo       Repository
	source     Source
	thresholds Thresholds
	now        func() time.Time
}

// NewRefreshService creates a refresh service.
func NewRefreshService(repo Repository, source Source, thresholds Thresholds) *RefreshService {
	return &RefreshService{repo: repo, source: source, thresholds: thresholds, now: time.Now}
}

// RefreshStale reloads every catalog whose cache age exceeds its threshold,
// and every individually cached planet past the planet threshold.
func (s *RefreshService) RefreshStale(ctx context.Context) error {
	checks := []struct {
		entity    string
		threshold time.Duration
		load      func(context.Context) error
	}{
		{EntityBuildings, s.thresholds.Buildings, s.refreshBuildings},
		{EntityRecipes, s.thresholds.Recipes, s.refreshRecipes},
		{EntityMaterials, s.thresholds.Materials, s.refreshMaterials},
		{EntityExchanges, s.thresholds.Exchanges, s.refreshExchanges},
	}

	for _, check := range checks {
		stale, err := s.isStale(ctx, check.entity, check.threshold)
		if err != nil {
			return err
		}
		if !stale {
			continue
		}
		if err := check.load(ctx); err != nil {
			return err
		}
	}

	planetIDs, err := s.repo.PlanetIDs(ctx)
	if err != nil {
		return fmt.Errorf("refresh planets: %w", err)
	}
	for _, id := range planetIDs {
		stale, err := s.isStale(ctx, EntityPlanet+id, s.thresholds.Planets)
		if err != nil {
			return err
		}
		if !stale {
			continue
		}
		if err := s.refreshPlanet(ctx, id); err != nil {
			return err
		}
	}

	return nil
}

// ForceRefresh reloads all full catalogs regardless of age.
func (s *RefreshService) ForceRefresh(ctx context.Context) error {
	if err := s.refreshBuildings(ctx); err != nil {
		return err
	}
	if err := s.refreshRecipes(ctx); err != nil {
		return err
	}
	if err := s.refreshMaterials(ctx); err != nil {
		return err
	}
	return s.refreshExchanges(ctx)
}

func (s *RefreshService) isStale(ctx context.Context, entity string, threshold time.Duration) (bool, error) {
	last, err := s.repo.LastRefreshed(ctx, entity)
	if err != nil {
		return false, fmt.Errorf("refresh check %s: %w", entity, err)
	}
	if last == nil {
		return true, nil
	}
	return s.now().Sub(*last) > threshold, nil
}

func (s *RefreshService) refreshMaterials(ctx context.Context) error {
	materials, err := s.source.FetchMaterials(ctx)
	if err != nil {
		return fmt.Errorf("refresh materials: %w", err)
	}
	if err := s.repo.ReplaceMaterials(ctx, materials); err != nil {
		return fmt.Errorf("refresh materials: %w", err)
	}
	return s.repo.SetLastRefreshed(ctx, EntityMaterials, s.now())
}

func (s *RefreshService) refreshBuildings(ctx context.Context) error {
	buildings, err := s.source.FetchBuildings(ctx)
	if err != nil {
		return fmt.Errorf("refresh buildings: %w", err)
	}
	if err := s.repo.ReplaceBuildings(ctx, buildings); err != nil {
		return fmt.Errorf("refresh buildings: %w", err)
	}
	return s.repo.SetLastRefreshed(ctx, EntityBuildings, s.now())
}

func (s *RefreshService) refreshRecipes(ctx context.Context) error {
	recipes, err := s.source.FetchRecipes(ctx)
	if err != nil {
		return fmt.Errorf("refresh recipes: %w", err)
	}
	if err := s.repo.ReplaceRecipes(ctx, recipes); err != nil {
		return fmt.Errorf("refresh recipes: %w", err)
	}
	return s.repo.SetLastRefreshed(ctx, EntityRecipes, s.now())
}

func (s *RefreshService) refreshExchanges(ctx context.Context) error {
	exchanges, err := s.source.FetchExchanges(ctx)
	if err != nil {
		return fmt.Errorf("refresh exchanges: %w", err)
	}
	if err := s.repo.ReplaceExchanges(ctx, exchanges); err != nil {
		return fmt.Errorf("refresh exchanges: %w", err)
	}
	return s.repo.SetLastRefreshed(ctx, EntityExchanges, s.now())
}

func (s *RefreshService) refreshPlanet(ctx context.Context, naturalID string) error {
	planet, err := s.source.FetchPlanet(ctx, naturalID)
	if err != nil {
		return fmt.Errorf("refresh planet %s: %w", naturalID, err)
	}
	if err := s.repo.UpsertPlanet(ctx, planet); err != nil {
		return fmt.Errorf("refresh planet %s: %w", naturalID, err)
	}
	return s.repo.SetLastRefreshed(ctx, EntityPlanet+naturalID, s.now())
}
