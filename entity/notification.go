package entity

import (
	"gorm.io/gorm"
)

type Notification struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	Type    string `json:"type"` // e.g. "order_status", "promo"
	Title   string `json:"title"`
	Body    string `json:"body"`
	IsRead  bool   `gorm:"not null;default:false" json:"isRead"`
	OrderID *uint  `json:"orderId"`
}
