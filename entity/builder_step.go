package entity

import (
	"gorm.io/gorm"
)

// BuilderStep is global configuration, not owned by any one menu item.
type BuilderStep struct {
	gorm.Model
	Name       string `json:"name"`
	StepKey    string `gorm:"uniqueIndex" json:"stepKey"` // machine key, e.g. "base", "protein"
	Type       string `gorm:"not null;default:single" json:"type"`
	IsRequired bool   `gorm:"not null;default:false" json:"isRequired"`

	MinSelections int  `gorm:"not null;default:1" json:"minSelections"`
	MaxSelections *int `json:"maxSelections"` // nil = unbounded

	SortOrder int `gorm:"not null;default:0" json:"sortOrder"`

	Items []BuilderStepItem `gorm:"foreignKey:StepID" json:"items,omitempty"`
}
