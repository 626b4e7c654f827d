package entity

import (
	"gorm.io/gorm"
)

type OrderItemSelection struct {
	gorm.Model
	OrderItemID uint      `json:"orderItemId"`
	OrderItem   OrderItem `json:"-"`

	GroupName  string `json:"groupName"` // step name for builder lines
	OptionName string `json:"optionName"`
	PriceDelta int64  `json:"priceDelta"`
}
