package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload only when the menu name is needed live

	ItemName      string `json:"itemName"`
	Qty           int    `json:"qty"`
	UnitPrice     int64  `json:"unitPrice"`
	LineTotal     int64  `json:"lineTotal"`
	IsBuilderItem bool   `gorm:"not null;default:false" json:"isBuilderItem"`

	Selections []OrderItemSelection `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"selections"`
}
