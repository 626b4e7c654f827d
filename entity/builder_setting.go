package entity

import (
	"gorm.io/gorm"
)

// BuilderSetting is a single-row table deciding which categories route to the
// step builder flow instead of plain customization groups.
type BuilderSetting struct {
	gorm.Model
	Enabled              bool   `gorm:"not null;default:false" json:"enabled"`
	BuilderCategoryIDs   string `json:"builderCategoryIds"` // comma separated category ids
	IncludeBaseItemPrice bool   `gorm:"not null;default:false" json:"includeBaseItemPrice"`
}
