package services

import (
	"errors"

	"gorm.io/gorm"

	"pippali-pos/entity"
	"pippali-pos/pkg/apperr"
	"pippali-pos/repository"
)

type MenuService struct {
	Repo    *repository.MenuRepository
	OptRepo *repository.OptionRepository
}

func NewMenuService(repo *repository.MenuRepository, optRepo *repository.OptionRepository) *MenuService {
	return &MenuService{Repo: repo, OptRepo: optRepo}
}

func (s *MenuService) List() ([]entity.MenuItem, error) {
	return s.Repo.List()
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu item not found")
		}
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Create(item *entity.MenuItem, optionGroupIDs []uint) error {
	if item.Name == "" {
		return apperr.Validation("name is required")
	}
	if len(optionGroupIDs) > 0 {
		groups, err := s.OptRepo.FindGroupsByIDs(optionGroupIDs)
		if err != nil {
			return err
		}
		item.OptionGroups = groups
	}
	return s.Repo.Create(item)
}

func (s *MenuService) Update(item *entity.MenuItem, optionGroupIDs []uint) error {
	if _, err := s.Get(item.ID); err != nil {
		return err
	}
	if err := s.Repo.Update(item); err != nil {
		return err
	}
	if optionGroupIDs != nil {
		groups, err := s.OptRepo.FindGroupsByIDs(optionGroupIDs)
		if err != nil {
			return err
		}
		return s.Repo.ReplaceOptionGroups(item, groups)
	}
	return nil
}

func (s *MenuService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
