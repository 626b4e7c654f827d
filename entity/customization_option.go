package entity

import (
	"gorm.io/gorm"
)

type CustomizationOption struct {
	gorm.Model
	GroupID uint               `json:"groupId"`
	Group   CustomizationGroup `json:"-"`

	Name            string `json:"name"`
	AdditionalPrice int64  `json:"additionalPrice"` // minor units; catalog data is non-negative but not enforced here
	IsDefault       bool   `gorm:"not null;default:false" json:"isDefault"`
	SortOrder       int    `gorm:"not null;default:0" json:"sortOrder"`
}
