package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	CategoryID *uint    `json:"category_id"`
	Category   Category `json:"-"`

	Name        string  `gorm:"index;size:200" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	BasePrice   float64 `json:"base_price"`
	ImageURL    string  `json:"image_url"`

	DishType     string `gorm:"size:50" json:"dish_type"` // e.g. CHICKEN, LAMB, SODA
	IsVegetarian bool   `gorm:"default:false" json:"is_vegetarian"`
	IsVegan      bool   `gorm:"default:false" json:"is_vegan"`
	IsGlutenFree bool   `gorm:"default:false" json:"is_gluten_free"`

	IsActive    bool `gorm:"default:true" json:"is_active"`
	IsAvailable bool `gorm:"default:true" json:"is_available"`
	SortOrder   int  `gorm:"default:0" json:"sort_order"`

	OptionGroups []OptionGroup `gorm:"many2many:menu_item_option_groups;" json:"option_groups,omitempty"`
	OrderItems   []OrderItem   `json:"-"`
}
