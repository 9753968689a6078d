package repository

import (
	"gorm.io/gorm"

	"pippali-pos/entity"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) List() ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.Order("number").Find(&tables).Error
	return tables, err
}

func (r *TableRepository) FindByID(id uint) (*entity.Table, error) {
	var table entity.Table
	if err := r.DB.First(&table, id).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *TableRepository) CountByNumber(number string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Table{}).Where("number = ?", number).Count(&count).Error
	return count, err
}

func (r *TableRepository) Create(t *entity.Table) error {
	return r.DB.Create(t).Error
}

func (r *TableRepository) UpdateFields(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.Table{}).Where("id = ?", id).Updates(fields).Error
}

func (r *TableRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Table{}, id).Error
}

// ---- grouping, always inside a transaction ----

func (r *TableRepository) FindByIDTx(tx *gorm.DB, id uint) (*entity.Table, error) {
	var table entity.Table
	if err := tx.First(&table, id).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

// FindByIDs sorts by id so that the first table is the group anchor
// regardless of input order.
func (r *TableRepository) FindByIDs(tx *gorm.DB, ids []uint) ([]entity.Table, error) {
	var tables []entity.Table
	err := tx.Where("id IN ?", ids).Order("id").Find(&tables).Error
	return tables, err
}

// FindGroup returns the root plus every table whose parent_id is the root.
func (r *TableRepository) FindGroup(tx *gorm.DB, rootID uint) ([]entity.Table, error) {
	var group []entity.Table
	err := tx.Where("id = ? OR parent_id = ?", rootID, rootID).Order("id").Find(&group).Error
	return group, err
}

func (r *TableRepository) Save(tx *gorm.DB, t *entity.Table) error {
	return tx.Save(t).Error
}
