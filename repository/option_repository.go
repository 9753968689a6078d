package repository

import (
	"gorm.io/gorm"

	"pippali-pos/entity"
)

type OptionRepository struct {
	DB *gorm.DB
}

func NewOptionRepository(db *gorm.DB) *OptionRepository {
	return &OptionRepository{DB: db}
}

func (r *OptionRepository) ListGroups() ([]entity.OptionGroup, error) {
	var groups []entity.OptionGroup
	err := r.DB.Preload("Options").Order("sort_order, name").Find(&groups).Error
	return groups, err
}

func (r *OptionRepository) FindGroupByID(id uint) (*entity.OptionGroup, error) {
	var group entity.OptionGroup
	if err := r.DB.Preload("Options").First(&group, id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *OptionRepository) FindGroupsByIDs(ids []uint) ([]entity.OptionGroup, error) {
	var groups []entity.OptionGroup
	err := r.DB.Where("id IN ?", ids).Find(&groups).Error
	return groups, err
}

func (r *OptionRepository) CountGroupsBySlug(slug string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.OptionGroup{}).Where("slug = ?", slug).Count(&count).Error
	return count, err
}

func (r *OptionRepository) CreateGroup(group *entity.OptionGroup) error {
	return r.DB.Create(group).Error
}

func (r *OptionRepository) DeleteGroup(id uint) error {
	return r.DB.Select("Options").Delete(&entity.OptionGroup{Model: gorm.Model{ID: id}}).Error
}

func (r *OptionRepository) CreateOption(opt *entity.Option) error {
	return r.DB.Create(opt).Error
}

func (r *OptionRepository) FindOptionByID(id uint) (*entity.Option, error) {
	var opt entity.Option
	if err := r.DB.First(&opt, id).Error; err != nil {
		return nil, err
	}
	return &opt, nil
}

func (r *OptionRepository) FindOptionsByIDs(ids []uint) ([]entity.Option, error) {
	return r.findOptionsByIDs(r.DB, ids)
}

func (r *OptionRepository) FindOptionsByIDsTx(tx *gorm.DB, ids []uint) ([]entity.Option, error) {
	return r.findOptionsByIDs(tx, ids)
}

func (r *OptionRepository) findOptionsByIDs(db *gorm.DB, ids []uint) ([]entity.Option, error) {
	var opts []entity.Option
	err := db.Where("id IN ?", ids).Find(&opts).Error
	return opts, err
}

func (r *OptionRepository) DeleteOption(id uint) error {
	return r.DB.Delete(&entity.Option{}, id).Error
}
