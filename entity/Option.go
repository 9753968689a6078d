package entity

import (
	"gorm.io/gorm"
)

type Option struct {
	gorm.Model
	OptionGroupID uint        `gorm:"index" json:"option_group_id"`
	OptionGroup   OptionGroup `json:"-"`

	Name       string  `gorm:"size:120" json:"name"`
	Slug       string  `gorm:"size:120" json:"slug"`
	PriceDelta float64 `gorm:"default:0" json:"price_delta"`
	SortOrder  int     `gorm:"default:0" json:"sort_order"`
	IsActive   bool    `gorm:"default:true" json:"is_active"`
}
