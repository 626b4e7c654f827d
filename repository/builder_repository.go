package repository

import (
	"errors"

	"storefront/entity"

	"gorm.io/gorm"
)

type BuilderRepository struct{ DB *gorm.DB }

func NewBuilderRepository(db *gorm.DB) *BuilderRepository { return &BuilderRepository{DB: db} }

// GetSetting returns the single builder-settings row, or a disabled default
// when none was ever saved.
func (r *BuilderRepository) GetSetting() (*entity.BuilderSetting, error) {
	var s entity.BuilderSetting
	err := r.DB.First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.BuilderSetting{}, nil
	}
	return &s, err
}

func (r *BuilderRepository) SaveSetting(s *entity.BuilderSetting) error {
	var existing entity.BuilderSetting
	err := r.DB.First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(s).Error
	}
	if err != nil {
		return err
	}
	s.ID = existing.ID
	return r.DB.Save(s).Error
}

// FindSteps loads all builder steps with their active items, in sort order.
// Callers freeze this slice per session; refreshes never rebase open sessions.
func (r *BuilderRepository) FindSteps() ([]entity.BuilderStep, error) {
	var steps []entity.BuilderStep
	err := r.DB.
		Preload("Items", "is_active = ?", true, func(db *gorm.DB) *gorm.DB {
			return db.Order("builder_step_items.sort_order")
		}).
		Preload("Items.MenuItem").
		Order("sort_order").
		Find(&steps).Error
	return steps, err
}

func (r *BuilderRepository) CreateStep(st *entity.BuilderStep) error {
	return r.DB.Create(st).Error
}

func (r *BuilderRepository) UpdateStep(st *entity.BuilderStep) error {
	return r.DB.Save(st).Error
}

func (r *BuilderRepository) DeleteStep(stepID uint) error {
	if err := r.DB.Where("step_id = ?", stepID).Delete(&entity.BuilderStepItem{}).Error; err != nil {
		return err
	}
	return r.DB.Delete(&entity.BuilderStep{}, stepID).Error
}

func (r *BuilderRepository) CreateStepItem(it *entity.BuilderStepItem) error {
	return r.DB.Create(it).Error
}

func (r *BuilderRepository) UpdateStepItem(it *entity.BuilderStepItem) error {
	return r.DB.Save(it).Error
}

func (r *BuilderRepository) DeleteStepItem(itemID uint) error {
	return r.DB.Delete(&entity.BuilderStepItem{}, itemID).Error
}
