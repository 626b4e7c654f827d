package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	// denormalized at add time; never rebased onto later catalog changes
	ItemName  string `json:"itemName"`
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
	LineTotal int64  `json:"lineTotal"`
	Note      string `json:"note"`

	// identical (item, selections, note) lines merge into one row
	SelectionsHash string `gorm:"index" json:"-"`
	IsBuilderItem  bool   `gorm:"not null;default:false" json:"isBuilderItem"`

	Selections   []CartItemSelection   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"selections"`
	BuilderPicks []CartItemBuilderPick `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"builderPicks,omitempty"`
}
