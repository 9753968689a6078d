package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pippali-pos/configs"
	"pippali-pos/pkg/resp"
	"pippali-pos/repository"
	"pippali-pos/services"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	return &AuthController{
		Service: services.NewAuthService(repository.NewAdminRepository(db), cfg),
	}
}

// POST /auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	result, err := ctl.Service.Login(req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, result)
}
