package repository

import (
	"storefront/entity"

	"gorm.io/gorm"
)

type FAQRepository struct{ DB *gorm.DB }

func NewFAQRepository(db *gorm.DB) *FAQRepository { return &FAQRepository{DB: db} }

// Search matches the query against question and answer text; an empty query
// lists everything active.
func (r *FAQRepository) Search(query string) ([]entity.FAQ, error) {
	q := r.DB.Where("is_active = ?", true).Order("sort_order")
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("question LIKE ? OR answer LIKE ?", like, like)
	}
	var out []entity.FAQ
	err := q.Find(&out).Error
	return out, err
}

func (r *FAQRepository) Create(f *entity.FAQ) error {
	return r.DB.Create(f).Error
}

func (r *FAQRepository) Update(f *entity.FAQ) error {
	return r.DB.Save(f).Error
}

func (r *FAQRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.FAQ{}, id).Error
}
