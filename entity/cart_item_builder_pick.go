package entity

import (
	"gorm.io/gorm"
)

type CartItemBuilderPick struct {
	gorm.Model
	CartItemID uint     `json:"cartItemId"`
	CartItem   CartItem `json:"-"`

	StepKey string `json:"stepKey"`

	// snapshot of the chosen step item
	MenuItemID uint   `json:"menuItemId"`
	ItemName   string `json:"itemName"`
	Price      int64  `json:"price"` // effective price at selection time
}
