package entity

import (
	"gorm.io/gorm"
)

// GroupType values live in the pricing package; stored here as plain text
// ("single", "single_optional", "multiple") so the catalog stays schema-simple.
type CustomizationGroup struct {
	gorm.Model
	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Name       string `json:"name"`
	Type       string `gorm:"not null;default:single" json:"type"`
	IsRequired bool   `gorm:"not null;default:false" json:"isRequired"`
	SortOrder  int    `gorm:"not null;default:0" json:"sortOrder"`

	Options []CustomizationOption `gorm:"foreignKey:GroupID" json:"options,omitempty"`
}
