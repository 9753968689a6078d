package entity

import (
	"gorm.io/gorm"
)

type Admin struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;size:200" json:"email"`
	Password string `json:"-"` // bcrypt hash
	Name     string `gorm:"size:120" json:"name"`
	Role     string `gorm:"size:50;default:admin" json:"role"`
}
