package entity

import (
	"gorm.io/gorm"
)

// StockAdjustment is an audit row; MenuItem.CurrentStock holds the running value.
type StockAdjustment struct {
	gorm.Model
	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Delta        int    `json:"delta"` // signed; negative = stock removed
	NewStock     int    `json:"newStock"`
	Reason       string `json:"reason"`
	AdjustedByID uint   `json:"adjustedById"`
	AdjustedBy   User   `json:"-"`
}
