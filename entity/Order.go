package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Type   OrderType   `gorm:"size:20;default:DINE_IN" json:"type"`
	Source OrderSource `gorm:"size:20;default:POS" json:"source"`
	Status OrderStatus `gorm:"size:20;index;default:PENDING" json:"status"`

	TotalAmount float64 `gorm:"default:0" json:"total_amount"`

	// Free-form label matching Table.Number, not a foreign key.
	// An order survives renumbering or deletion of its table.
	TableNumber  string `gorm:"index;size:50" json:"table_number"`
	CustomerName string `gorm:"size:120" json:"customer_name"`
	Notes        string `json:"notes"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
