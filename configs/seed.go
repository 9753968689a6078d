package configs

import (
	"log"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"pippali-pos/entity"
)

func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Admin{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.Admin{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedTables lays out the default floor plan once: twelve tables on a
// four-column grid in percentage space.
func SeedTables() error {
	db := DB()

	var count int64
	db.Model(&entity.Table{}).Count(&count)
	if count > 0 {
		return nil
	}

	const cols = 4
	tables := make([]entity.Table, 0, 12)
	for i := 1; i <= 12; i++ {
		row := (i - 1) / cols
		col := (i - 1) % cols

		capacity := 4
		if i > 8 {
			capacity = 6
		}
		tables = append(tables, entity.Table{
			Number:    strconv.Itoa(i),
			Capacity:  capacity,
			PositionX: 10.0 + float64(col)*22.0,
			PositionY: 10.0 + float64(row)*22.0,
			Shape:     "rectangle",
		})
	}
	return db.Create(&tables).Error
}
