package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // minor units (cents)
	ImageURL    string `json:"imageUrl"`
	DietaryTags string `json:"dietaryTags"` // comma separated, e.g. "halal,spicy"
	IsActive    bool   `gorm:"not null;default:true" json:"isActive"`

	// stock tracking is opt-in; CurrentStock is meaningless when StockTracked is false
	StockTracked bool `gorm:"not null;default:false" json:"stockTracked"`
	CurrentStock *int `json:"currentStock"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload only on item detail

	Groups []CustomizationGroup `gorm:"foreignKey:MenuItemID" json:"customizationGroups,omitempty"`
}
