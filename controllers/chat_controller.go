package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pippali-pos/pkg/resp"
	"pippali-pos/repository"
	"pippali-pos/services"
)

type ChatController struct {
	Service *services.ChatService
}

func NewChatController(db *gorm.DB, apiKey string) *ChatController {
	return &ChatController{
		Service: services.NewChatService(repository.NewMenuRepository(db), apiKey),
	}
}

// POST /chat
func (ctl *ChatController) Chat(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	answer, err := ctl.Service.Chat(req.Message)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"response": answer})
}
