package entity

import (
	"gorm.io/gorm"
)

type FAQ struct {
	gorm.Model
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Category  string `json:"category"`
	SortOrder int    `gorm:"not null;default:0" json:"sortOrder"`
	IsActive  bool   `gorm:"not null;default:true" json:"isActive"`
}
