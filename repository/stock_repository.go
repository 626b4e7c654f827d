package repository

import (
	"errors"

	"storefront/entity"

	"gorm.io/gorm"
)

type StockRepository struct{ DB *gorm.DB }

func NewStockRepository(db *gorm.DB) *StockRepository { return &StockRepository{DB: db} }

// Adjust applies a signed delta to an item's tracked stock and writes the
// audit row, inside the caller's transaction.
func (r *StockRepository) Adjust(tx *gorm.DB, itemID uint, delta int, reason string, adjustedBy uint) (*entity.StockAdjustment, error) {
	var item entity.MenuItem
	if err := tx.First(&item, itemID).Error; err != nil {
		return nil, err
	}
	if !item.StockTracked {
		return nil, errors.New("item is not stock tracked")
	}

	current := 0
	if item.CurrentStock != nil {
		current = *item.CurrentStock
	}
	next := current + delta
	if next < 0 {
		return nil, errors.New("stock cannot go negative")
	}

	if err := tx.Model(&item).Update("current_stock", next).Error; err != nil {
		return nil, err
	}

	adj := entity.StockAdjustment{
		MenuItemID:   itemID,
		Delta:        delta,
		NewStock:     next,
		Reason:       reason,
		AdjustedByID: adjustedBy,
	}
	if err := tx.Create(&adj).Error; err != nil {
		return nil, err
	}
	return &adj, nil
}

func (r *StockRepository) ListAdjustments(itemID uint, limit int) ([]entity.StockAdjustment, error) {
	if limit <= 0 {
		limit = 50
	}
	q := r.DB.Order("id DESC").Limit(limit)
	if itemID != 0 {
		q = q.Where("menu_item_id = ?", itemID)
	}
	var out []entity.StockAdjustment
	err := q.Find(&out).Error
	return out, err
}

// Decrement reduces tracked stock at checkout; untracked items pass through.
func (r *StockRepository) Decrement(tx *gorm.DB, itemID uint, qty int) error {
	var item entity.MenuItem
	if err := tx.First(&item, itemID).Error; err != nil {
		return err
	}
	if !item.StockTracked || item.CurrentStock == nil {
		return nil
	}
	next := *item.CurrentStock - qty
	if next < 0 {
		return errors.New("insufficient stock")
	}
	return tx.Model(&item).Update("current_stock", next).Error
}
