package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/andrescamacho/prunplan/internal/domain/gamedata"
)

// GormGameDataRepository is the local reference data cache behind the
// in-memory store and the refresh service.
type GormGameDataRepository struct {
	db *gorm.DB
}

// NewGormGameDataRepository creates a new GORM-based game data repository
func NewGormGameDataRepository(db *gorm.DB) *GormGameDataRepository {
	return &GormGameDataRepository{db: db}
}

// Materials loads the full material catalog.
func (r *GormGameDataRepository) Materials(ctx context.Context) ([]gamedata.Material, error) {
	var models []MaterialModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("load materials: %w", err)
	}

	materials := make([]gamedata.Material, 0, len(models))
	for _, m := range models {
		materials = append(materials, gamedata.Material{
			Ticker:   m.Ticker,
			Name:     m.Name,
			Category: m.Category,
			Weight:   m.Weight,
			Volume:   m.Volume,
		})
	}
	return materials, nil
}

// ReplaceMaterials swaps the whole material catalog in one transaction.
func (r *GormGameDataRepository) ReplaceMaterials(ctx context.Context, materials []gamedata.Material) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&MaterialModel{}).Error; err != nil {
			return fmt.Errorf("clear materials: %w", err)
		}
		if len(materials) == 0 {
			return nil
		}

		models := make([]MaterialModel, 0, len(materials))
		for _, m := range materials {
			models = append(models, MaterialModel{
				Ticker:   m.Ticker,
				Name:     m.Name,
				Category: m.Category,
				Weight:   m.Weight,
				Volume:   m.Volume,
			})
		}
		if err := tx.Create(&models).Error; err != nil {
			return fmt.Errorf("insert materials: %w", err)
		}
		return nil
	})
}

// Buildings loads the full building catalog.
func (r *GormGameDataRepository) Buildings(ctx context.Context) ([]gamedata.Building, error) {
	var models []BuildingModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("load buildings: %w", err)
	}

	buildings := make([]gamedata.Building, 0, len(models))
	for _, m := range models {
		building, err := modelToBuilding(&m)
		if err != nil {
			return nil, err
		}
		buildings = append(buildings, *building)
	}
	return buildings, nil
}

// ReplaceBuildings swaps the whole building catalog in one transaction.
func (r *GormGameDataRepository) ReplaceBuildings(ctx context.Context, buildings []gamedata.Building) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&BuildingModel{}).Error; err != nil {
			return fmt.Errorf("clear buildings: %w", err)
		}
		if len(buildings) == 0 {
			return nil
		}

		models := make([]BuildingModel, 0, len(buildings))
		for _, b := range buildings {
			workforce, err := json.Marshal(b.Workforce)
			if err != nil {
				return fmt.Errorf("marshal workforce of %s: %w", b.Ticker, err)
			}
			costs, err := json.Marshal(b.Costs)
			if err != nil {
				return fmt.Errorf("marshal costs of %s: %w", b.Ticker, err)
			}
			models = append(models, BuildingModel{
				Ticker:    b.Ticker,
				Name:      b.Name,
				Expertise: string(b.Expertise),
				AreaCost:  b.AreaCost,
				Workforce: string(workforce),
				Costs:     string(costs),
			})
		}
		if err := tx.Create(&models).Error; err != nil {
			return fmt.Errorf("insert buildings: %w", err)
		}
		return nil
	})
}

// Recipes loads the full recipe catalog.
func (r *GormGameDataRepository) Recipes(ctx context.Context) ([]gamedata.Recipe, error) {
	var models []RecipeModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("load recipes: %w", err)
	}

	recipes := make([]gamedata.Recipe, 0, len(models))
	for _, m := range models {
		recipe, err := modelToRecipe(&m)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, *recipe)
	}
	return recipes, nil
}

// ReplaceRecipes swaps the whole recipe catalog in one transaction.
func (r *GormGameDataRepository) ReplaceRecipes(ctx context.Context, recipes []gamedata.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&RecipeModel{}).Error; err != nil {
			return fmt.Errorf("clear recipes: %w", err)
		}
		if len(recipes) == 0 {
			return nil
		}

		models := make([]RecipeModel, 0, len(recipes))
		for _, rec := range recipes {
			inputs, err := json.Marshal(rec.Inputs)
			if err != nil {
				return fmt.Errorf("marshal inputs of %s: %w", rec.RecipeID, err)
			}
			outputs, err := json.Marshal(rec.Outputs)
			if err != nil {
				return fmt.Errorf("marshal outputs of %s: %w", rec.RecipeID, err)
			}
			models = append(models, RecipeModel{
				RecipeID:       rec.RecipeID,
				BuildingTicker: rec.BuildingTicker,
				TimeMs:         rec.TimeMs,
				Inputs:         string(inputs),
				Outputs:        string(outputs),
			})
		}
		if err := tx.Create(&models).Error; err != nil {
			return fmt.Errorf("insert recipes: %w", err)
		}
		return nil
	})
}

// Exchanges loads the full exchange price cache.
func (r *GormGameDataRepository) Exchanges(ctx context.Context) ([]gamedata.Exchange, error) {
	var models []ExchangeModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("load exchanges: %w", err)
	}

	exchanges := make([]gamedata.Exchange, 0, len(models))
	for _, m := range models {
		exchanges = append(exchanges, gamedata.Exchange{
			TickerID:     m.TickerID,
			Ask:          m.Ask,
			Bid:          m.Bid,
			PriceAverage: m.PriceAverage,
		})
	}
	return exchanges, nil
}

// ReplaceExchanges swaps the whole exchange cache in one transaction.
func (r *GormGameDataRepository) ReplaceExchanges(ctx context.Context, exchanges []gamedata.Exchange) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&ExchangeModel{}).Error; err != nil {
			return fmt.Errorf("clear exchanges: %w", err)
		}
		if len(exchanges) == 0 {
			return nil
		}

		models := make([]ExchangeModel, 0, len(exchanges))
		for _, e := range exchanges {
			models = append(models, ExchangeModel{
				TickerID:     e.TickerID,
				Ask:          e.Ask,
				Bid:          e.Bid,
				PriceAverage: e.PriceAverage,
			})
		}
		if err := tx.Create(&models).Error; err != nil {
			return fmt.Errorf("insert exchanges: %w", err)
		}
		return nil
	})
}

// Planet loads one cached planet, nil when absent.
func (r *GormGameDataRepository) Planet(ctx context.Context, naturalID string) (*gamedata.Planet, error) {
	var model PlanetModel
	err := r.db.WithContext(ctx).Where("natural_id = ?", naturalID).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load planet %s: %w", naturalID, err)
	}
	return modelToPlanet(&model)
}

// UpsertPlanet inserts or updates one cached planet.
func (r *GormGameDataRepository) UpsertPlanet(ctx context.Context, planet *gamedata.Planet) error {
	resources, err := json.Marshal(planet.Resources)
	if err != nil {
		return fmt.Errorf("marshal resources of %s: %w", planet.NaturalID, err)
	}

	surface := 0
	if planet.Surface {
		surface = 1
	}

	model := PlanetModel{
		NaturalID:   planet.NaturalID,
		Name:        planet.Name,
		Surface:     surface,
		Gravity:     planet.Gravity,
		Pressure:    planet.Pressure,
		Temperature: planet.Temperature,
		COGCProgram: string(planet.COGCProgram),
		Resources:   string(resources),
	}

	err = r.db.WithContext(ctx).
		Where("natural_id = ?", model.NaturalID).
		Assign(map[string]interface{}{
			"name":         model.Name,
			"surface":      model.Surface,
			"gravity":      model.Gravity,
			"pressure":     model.Pressure,
			"temperature":  model.Temperature,
			"cogc_program": model.COGCProgram,
			"resources":    model.Resources,
		}).
		FirstOrCreate(&model).Error
	if err != nil {
		return fmt.Errorf("upsert planet %s: %w", planet.NaturalID, err)
	}
	return nil
}

// PlanetIDs lists every cached planet's natural id.
func (r *GormGameDataRepository) PlanetIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).Model(&PlanetModel{}).Pluck("natural_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("list planet ids: %w", err)
	}
	return ids, nil
}

// LastRefreshed returns when an entity was last refreshed, nil when never.
func (r *GormGameDataRepository) LastRefreshed(ctx context.Context, entity string) (*time.Time, error) {
	var model RefreshModel
	err := r.db.WithContext(ctx).Where("entity = ?", entity).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load refresh time of %s: %w", entity, err)
	}
	return &model.RefreshedAt, nil
}

// SetLastRefreshed records a refresh timestamp for an entity.
func (r *GormGameDataRepository) SetLastRefreshed(ctx context.Context, entity string, at time.Time) error {
	model := RefreshModel{Entity: entity, RefreshedAt: at}
	err := r.db.WithContext(ctx).
		Where("entity = ?", entity).
		Assign(map[string]interface{}{"refreshed_at": at}).
		FirstOrCreate(&model).Error
	if err != nil {
		return fmt.Errorf("record refresh of %s: %w", entity, err)
	}
	return nil
}

func modelToBuilding(model *BuildingModel) (*gamedata.Building, error) {
	workforce := make(map[gamedata.WorkforceType]int)
	if model.Workforce != "" {
		if err := json.Unmarshal([]byte(model.Workforce), &workforce); err != nil {
			return nil, fmt.Errorf("unmarshal workforce of %s: %w", model.Ticker, err)
		}
	}

	var costs []gamedata.MaterialAmount
	if model.Costs != "" {
		if err := json.Unmarshal([]byte(model.Costs), &costs); err != nil {
			return nil, fmt.Errorf("unmarshal costs of %s: %w", model.Ticker, err)
		}
	}

	return &gamedata.Building{
		Ticker:    model.Ticker,
		Name:      model.Name,
		Expertise: gamedata.ExpertType(model.Expertise),
		Workforce: workforce,
		AreaCost:  model.AreaCost,
		Costs:     costs,
	}, nil
}

func modelToRecipe(model *RecipeModel) (*gamedata.Recipe, error) {
	var inputs, outputs []gamedata.MaterialAmount
	if model.Inputs != "" {
		if err := json.Unmarshal([]byte(model.Inputs), &inputs); err != nil {
			return nil, fmt.Errorf("unmarshal inputs of %s: %w", model.RecipeID, err)
		}
	}
	if model.Outputs != "" {
		if err := json.Unmarshal([]byte(model.Outputs), &outputs); err != nil {
			return nil, fmt.Errorf("unmarshal outputs of %s: %w", model.RecipeID, err)
		}
	}

	return &gamedata.Recipe{
		RecipeID:       model.RecipeID,
		BuildingTicker: model.BuildingTicker,
		TimeMs:         model.TimeMs,
		Inputs:         inputs,
		Outputs:        outputs,
	}, nil
}

func modelToPlanet(model *PlanetModel) (*gamedata.Planet, error) {
	var resources []gamedata.PlanetResource
	if model.Resources != "" {
		if err := json.Unmarshal([]byte(model.Resources), &resources); err != nil {
			return nil, fmt.Errorf("unmarshal resources of %s: %w", model.NaturalID, err)
		}
	}

	return &gamedata.Planet{
		NaturalID:   model.NaturalID,
		Name:        model.Name,
		Surface:     model.Surface != 0,
		Gravity:     model.Gravity,
		Pressure:    model.Pressure,
		Temperature: model.Temperature,
		COGCProgram: gamedata.COGCProgram(model.COGCProgram),
		Resources:   resources,
	}, nil
}
