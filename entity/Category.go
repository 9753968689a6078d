package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name      string `gorm:"size:120" json:"name"`
	Slug      string `gorm:"uniqueIndex;size:120" json:"slug"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
	IsActive  bool   `gorm:"default:true" json:"is_active"`

	Items []MenuItem `json:"-"`
}
