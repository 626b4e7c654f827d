package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"` // preload only on admin order detail

	// Reference is the customer-facing order id (uuid), stable across systems
	Reference string `gorm:"uniqueIndex" json:"reference"`

	Status   string `gorm:"not null;default:pending" json:"status"`
	Subtotal int64  `json:"subtotal"`
	Discount int64  `json:"discount"`
	Total    int64  `json:"total"`

	Note string `json:"note"`

	Items []OrderItem `json:"items,omitempty"`
}
