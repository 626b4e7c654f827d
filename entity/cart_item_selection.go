package entity

import (
	"gorm.io/gorm"
)

type CartItemSelection struct {
	gorm.Model
	CartItemID uint     `json:"cartItemId"`
	CartItem   CartItem `json:"-"`

	GroupID  uint `json:"groupId"`
	OptionID uint `json:"optionId"`

	// snapshot at selection time, not a live reference
	GroupName  string `json:"groupName"`
	OptionName string `json:"optionName"`
	PriceDelta int64  `json:"priceDelta"`
}
