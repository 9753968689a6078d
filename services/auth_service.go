package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pippali-pos/configs"
	"pippali-pos/pkg/apperr"
	"pippali-pos/repository"
	"pippali-pos/utils"
)

type AuthService struct {
	Repo *repository.AdminRepository
	Cfg  *configs.Config
}

func NewAuthService(repo *repository.AdminRepository, cfg *configs.Config) *AuthService {
	return &AuthService{Repo: repo, Cfg: cfg}
}

type LoginResult struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (s *AuthService) Login(email, password string) (*LoginResult, error) {
	admin, err := s.Repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	token, err := utils.GenerateToken(admin.ID, admin.Role, s.Cfg.JWTSecret, s.Cfg.JWTTTL)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, Name: admin.Name, Role: admin.Role}, nil
}
