package repository

import (
	"time"

	"storefront/entity"

	"gorm.io/gorm"
)

type DiscountRepository struct{ DB *gorm.DB }

func NewDiscountRepository(db *gorm.DB) *DiscountRepository { return &DiscountRepository{DB: db} }

func (r *DiscountRepository) FindAll() ([]entity.Discount, error) {
	var out []entity.Discount
	err := r.DB.Order("id DESC").Find(&out).Error
	return out, err
}

func (r *DiscountRepository) FindByID(id uint) (*entity.Discount, error) {
	var d entity.Discount
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// FindActiveByCode returns a discount only when it is active and inside its
// validity window.
func (r *DiscountRepository) FindActiveByCode(code string, now time.Time) (*entity.Discount, error) {
	var d entity.Discount
	err := r.DB.
		Where("code = ? AND is_active = ?", code, true).
		Where("valid_from IS NULL OR valid_from <= ?", now).
		Where("valid_until IS NULL OR valid_until >= ?", now).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DiscountRepository) Create(d *entity.Discount) error {
	return r.DB.Create(d).Error
}

func (r *DiscountRepository) Update(d *entity.Discount) error {
	return r.DB.Save(d).Error
}

func (r *DiscountRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Discount{}, id).Error
}
