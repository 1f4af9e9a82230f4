package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andrescamacho/prunplan/internal/domain/pricing"
)

// GormCXRepository persists CX exchange-price configurations.
type GormCXRepository struct {
	db *gorm.DB
}

// NewGormCXRepository creates a new GORM-based CX repository
func NewGormCXRepository(db *gorm.DB) *GormCXRepository {
	return &GormCXRepository{db: db}
}

// Save persists a configuration, assigning a uuid when it has none.
func (r *GormCXRepository) Save(ctx context.Context, cx *pricing.CX) error {
	if cx.UUID == "" {
		cx.UUID = uuid.NewString()
	}

	data, err := json.Marshal(cx)
	if err != nil {
		return fmt.Errorf("marshal cx %s: %w", cx.UUID, err)
	}

	model := CXModel{
		UUID:      cx.UUID,
		Name:      cx.Name,
		Data:      string(data),
		UpdatedAt: time.Now().UTC(),
	}

	err = r.db.WithContext(ctx).
		Where("uuid = ?", model.UUID).
		Assign(map[string]interface{}{
			"name":       model.Name,
			"data":       model.Data,
			"updated_at": model.UpdatedAt,
		}).
		FirstOrCreate(&model).Error
	if err != nil {
		return fmt.Errorf("save cx %s: %w", cx.UUID, err)
	}
	return nil
}

// FindByUUID loads one configuration.
func (r *GormCXRepository) FindByUUID(ctx context.Context, cxUUID string) (*pricing.CX, error) {
	var model CXModel
	err := r.db.WithContext(ctx).Where("uuid = ?", cxUUID).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("cx %s: %w", cxUUID, pricing.ErrCXNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find cx %s: %w", cxUUID, err)
	}
	return modelToCX(&model)
}

// LoadAll hydrates every stored configuration into an in-memory CXSet for
// the engine.
func (r *GormCXRepository) LoadAll(ctx context.Context) (pricing.CXSet, error) {
	var models []CXModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("load cx configurations: %w", err)
	}

	set := make(pricing.CXSet, len(models))
	for i := range models {
		cx, err := modelToCX(&models[i])
		if err != nil {
			return nil, err
		}
		set[cx.UUID] = cx
	}
	return set, nil
}

func modelToCX(model *CXModel) (*pricing.CX, error) {
	var cx pricing.CX
	if err := json.Unmarshal([]byte(model.Data), &cx); err != nil {
		return nil, fmt.Errorf("unmarshal cx %s: %w", model.UUID, err)
	}
	cx.UUID = model.UUID
	cx.Name = model.Name
	return &cx, nil
}
