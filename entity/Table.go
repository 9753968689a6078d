package entity

import (
	"gorm.io/gorm"
)

type Table struct {
	gorm.Model
	Number     string `gorm:"uniqueIndex;size:50" json:"number"`
	Capacity   int    `gorm:"default:4" json:"capacity"`
	IsOccupied bool   `gorm:"default:false" json:"is_occupied"`

	// Table joining: groups are exactly one level deep, children point at the parent.
	ParentID *uint   `gorm:"index" json:"parent_id"`
	Children []Table `gorm:"foreignKey:ParentID" json:"children,omitempty"`

	// Drag-and-drop layout, percentage space 0-100
	PositionX float64 `gorm:"default:0" json:"position_x"`
	PositionY float64 `gorm:"default:0" json:"position_y"`
	Shape     string  `gorm:"size:20;default:rectangle" json:"shape"`

	// Snap-back snapshot, non-null only while part of a group that has not been restored
	OriginalX *float64 `json:"original_x"`
	OriginalY *float64 `json:"original_y"`
}
