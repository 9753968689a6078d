package entity

import (
	"gorm.io/gorm"
)

type OptionGroup struct {
	gorm.Model
	Name           string `gorm:"size:120" json:"name"`
	Slug           string `gorm:"uniqueIndex;size:120" json:"slug"`
	IsRequired     bool   `gorm:"default:false" json:"is_required"`
	AllowsMultiple bool   `gorm:"default:false" json:"allows_multiple"`
	SortOrder      int    `gorm:"default:0" json:"sort_order"`
	IsActive       bool   `gorm:"default:true" json:"is_active"`

	Options []Option `gorm:"constraint:OnDelete:CASCADE" json:"options"`

	MenuItems []MenuItem `gorm:"many2many:menu_item_option_groups;" json:"-"`
}
