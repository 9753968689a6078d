package services

import (
	"errors"

	"gorm.io/gorm"

	"pippali-pos/entity"
	"pippali-pos/pkg/apperr"
	"pippali-pos/repository"
)

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

func (s *CategoryService) List() ([]entity.Category, error) {
	return s.Repo.List()
}

func (s *CategoryService) Get(id uint) (*entity.Category, error) {
	cat, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category not found")
		}
		return nil, err
	}
	return cat, nil
}

func (s *CategoryService) Create(cat *entity.Category) error {
	if cat.Name == "" || cat.Slug == "" {
		return apperr.Validation("name and slug are required")
	}
	count, err := s.Repo.CountBySlug(cat.Slug)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Validation("category slug already exists")
	}
	return s.Repo.Create(cat)
}

func (s *CategoryService) Update(cat *entity.Category) error {
	if _, err := s.Get(cat.ID); err != nil {
		return err
	}
	return s.Repo.Update(cat)
}

func (s *CategoryService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
