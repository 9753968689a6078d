package repository

import (
	"gorm.io/gorm"

	"pippali-pos/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) List() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Preload("Category").
		Preload("OptionGroups.Options").
		Order("sort_order, name").
		Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindActive() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("is_active = ?", true).Order("sort_order, name").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.
		Preload("Category").
		Preload("OptionGroups.Options").
		First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByIDTx is the transaction-scoped lookup used during order creation;
// pricing snapshots must read inside the same unit of work.
func (r *MenuRepository) FindByIDTx(tx *gorm.DB, id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := tx.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Update(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuRepository) ReplaceOptionGroups(item *entity.MenuItem, groups []entity.OptionGroup) error {
	return r.DB.Model(item).Association("OptionGroups").Replace(groups)
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}
