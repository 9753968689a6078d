package services

import (
	"errors"

	"gorm.io/gorm"

	"pippali-pos/entity"
	"pippali-pos/pkg/apperr"
	"pippali-pos/repository"
)

type OptionService struct {
	Repo *repository.OptionRepository
}

func NewOptionService(repo *repository.OptionRepository) *OptionService {
	return &OptionService{Repo: repo}
}

func (s *OptionService) ListGroups() ([]entity.OptionGroup, error) {
	return s.Repo.ListGroups()
}

func (s *OptionService) GetGroup(id uint) (*entity.OptionGroup, error) {
	group, err := s.Repo.FindGroupByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("option group not found")
		}
		return nil, err
	}
	return group, nil
}

// CreateGroup stores a group together with any nested options.
func (s *OptionService) CreateGroup(group *entity.OptionGroup) error {
	if group.Name == "" || group.Slug == "" {
		return apperr.Validation("name and slug are required")
	}
	count, err := s.Repo.CountGroupsBySlug(group.Slug)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Validation("option group slug already exists")
	}
	return s.Repo.CreateGroup(group)
}

func (s *OptionService) DeleteGroup(id uint) error {
	if _, err := s.GetGroup(id); err != nil {
		return err
	}
	return s.Repo.DeleteGroup(id)
}

func (s *OptionService) CreateOption(groupID uint, opt *entity.Option) error {
	if _, err := s.GetGroup(groupID); err != nil {
		return err
	}
	if opt.Name == "" {
		return apperr.Validation("name is required")
	}
	opt.OptionGroupID = groupID
	return s.Repo.CreateOption(opt)
}

func (s *OptionService) DeleteOption(id uint) error {
	if _, err := s.Repo.FindOptionByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("option not found")
		}
		return err
	}
	return s.Repo.DeleteOption(id)
}
