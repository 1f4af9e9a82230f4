package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andrescamacho/prunplan/internal/domain/plan"
)

// ErrPlanNotFound is returned when a plan uuid is not in the store
var ErrPlanNotFound = errors.New("plan not found")

// ErrEmptyPlanName is returned when a draft is saved without a name
var ErrEmptyPlanName = errors.New("plan name must not be empty")

// GormPlanRepository persists plan drafts through their canonical backend
// serialization.
type GormPlanRepository struct {
	db *gorm.DB
}

// NewGormPlanRepository creates a new GORM-based plan repository
func NewGormPlanRepository(db *gorm.DB) *GormPlanRepository {
	return &GormPlanRepository{db: db}
}

// Save persists a draft. A draft without identity gets a fresh uuid, which
// is written back to the draft. Empty names are rejected here, not in the
// editing handlers.
func (r *GormPlanRepository) Save(ctx context.Context, draft *plan.Draft) error {
	if draft.Name == "" {
		return ErrEmptyPlanName
	}

	if draft.UUID == "" {
		draft.UUID = uuid.NewString()
	}

	data, err := json.Marshal(draft.ToBackendData())
	if err != nil {
		return fmt.Errorf("marshal plan %s: %w", draft.UUID, err)
	}

	now := time.Now().UTC()
	model := PlanModel{
		UUID:      draft.UUID,
		Name:      draft.Name,
		PlanetID:  draft.PlanetID,
		Data:      string(data),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = r.db.WithContext(ctx).
		Where("uuid = ?", model.UUID).
		Assign(map[string]interface{}{
			"name":       model.Name,
			"planet_id":  model.PlanetID,
			"data":       model.Data,
			"updated_at": now,
		}).
		FirstOrCreate(&model).Error
	if err != nil {
		return fmt.Errorf("save plan %s: %w", draft.UUID, err)
	}
	return nil
}

// FindByUUID loads one draft by its identity.
func (r *GormPlanRepository) FindByUUID(ctx context.Context, planUUID string) (*plan.Draft, error) {
	var model PlanModel
	err := r.db.WithContext(ctx).Where("uuid = ?", planUUID).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("plan %s: %w", planUUID, ErrPlanNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find plan %s: %w", planUUID, err)
	}
	return modelToDraft(&model)
}

// ListAll loads every stored draft, newest first.
func (r *GormPlanRepository) ListAll(ctx context.Context) ([]*plan.Draft, error) {
	var models []PlanModel
	if err := r.db.WithContext(ctx).Order("updated_at DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	drafts := make([]*plan.Draft, 0, len(models))
	for i := range models {
		draft, err := modelToDraft(&models[i])
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, draft)
	}
	return drafts, nil
}

// Delete removes one plan by its identity.
func (r *GormPlanRepository) Delete(ctx context.Context, planUUID string) error {
	result := r.db.WithContext(ctx).Where("uuid = ?", planUUID).Delete(&PlanModel{})
	if result.Error != nil {
		return fmt.Errorf("delete plan %s: %w", planUUID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("plan %s: %w", planUUID, ErrPlanNotFound)
	}
	return nil
}

func modelToDraft(model *PlanModel) (*plan.Draft, error) {
	var data plan.BackendData
	if err := json.Unmarshal([]byte(model.Data), &data); err != nil {
		return nil, fmt.Errorf("unmarshal plan %s: %w", model.UUID, err)
	}
	return plan.FromBackendData(model.UUID, data), nil
}
