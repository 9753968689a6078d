package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pippali-pos/entity"
	"pippali-pos/pkg/resp"
	"pippali-pos/repository"
	"pippali-pos/services"
)

type OptionController struct {
	Service *services.OptionService
}

func NewOptionController(db *gorm.DB) *OptionController {
	return &OptionController{
		Service: services.NewOptionService(repository.NewOptionRepository(db)),
	}
}

// GET /option-groups
func (ctl *OptionController) ListGroups(c *gin.Context) {
	groups, err := ctl.Service.ListGroups()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, groups)
}

// GET /option-groups/:id
func (ctl *OptionController) GetGroup(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	group, err := ctl.Service.GetGroup(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, group)
}

// POST /option-groups
func (ctl *OptionController) CreateGroup(c *gin.Context) {
	var req entity.OptionGroup
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Service.CreateGroup(&req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, req)
}

// DELETE /option-groups/:id
func (ctl *OptionController) DeleteGroup(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Service.DeleteGroup(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Option group deleted"})
}

// POST /option-groups/:id/options
func (ctl *OptionController) CreateOption(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req entity.Option
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Service.CreateOption(uint(id), &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, req)
}

// DELETE /option-groups/options/:optionId
func (ctl *OptionController) DeleteOption(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("optionId"))
	if err := ctl.Service.DeleteOption(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Option deleted"})
}
