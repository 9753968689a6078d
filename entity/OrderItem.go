package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrderItem struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	OrderID string `gorm:"index;size:36" json:"order_id"`
	Order   Order  `json:"-"`

	MenuItemID uint     `json:"menu_item_id"`
	MenuItem   MenuItem `json:"-"`

	// Snapshot fields copied from the menu item at order time so that later
	// catalog edits never change historical orders.
	MenuItemName string  `gorm:"size:200" json:"menu_item_name"`
	UnitPrice    float64 `json:"unit_price"`

	Quantity   int     `gorm:"default:1" json:"quantity"`
	TotalPrice float64 `json:"total_price"`
	Notes      string  `json:"notes,omitempty"`

	// Chosen options at order time, snapshotted as [{name, price_delta}, ...]
	SelectedOptions datatypes.JSON `json:"selected_options,omitempty"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
