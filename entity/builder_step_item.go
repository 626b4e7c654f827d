package entity

import (
	"gorm.io/gorm"
)

type BuilderStepItem struct {
	gorm.Model
	StepID uint        `json:"stepId"`
	Step   BuilderStep `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	// OverridePrice replaces the underlying item's price inside the builder only
	OverridePrice *int64 `json:"overridePrice"`
	IsActive      bool   `gorm:"not null;default:true" json:"isActive"`
	SortOrder     int    `gorm:"not null;default:0" json:"sortOrder"`
}

// EffectivePrice is the price actually charged for this item within the builder.
func (i *BuilderStepItem) EffectivePrice() int64 {
	if i.OverridePrice != nil {
		return *i.OverridePrice
	}
	return i.MenuItem.Price
}
