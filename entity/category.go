package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name      string `json:"name"`
	SortOrder int    `gorm:"not null;default:0" json:"sortOrder"`

	// preload only on full menu fetch
	Items []MenuItem `json:"items,omitempty"`
}
