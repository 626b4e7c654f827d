package entity

import (
	"time"

	"gorm.io/gorm"
)

type Discount struct {
	gorm.Model
	Code        string `gorm:"uniqueIndex" json:"code"`
	Description string `json:"description"`

	// exactly one of the two is non-zero depending on Kind
	Kind        string     `gorm:"not null;default:fixed" json:"kind"` // fixed | percent
	AmountOff   int64      `json:"amountOff"`                          // minor units
	PercentOff  int        `json:"percentOff"`                         // 0..100
	MinSubtotal int64      `json:"minSubtotal"`
	IsActive    bool       `gorm:"not null;default:true" json:"isActive"`
	ValidFrom   *time.Time `json:"validFrom"`
	ValidUntil  *time.Time `json:"validUntil"`

	CreatedByID uint `json:"createdById"`
	CreatedBy   User `json:"-"`
}
