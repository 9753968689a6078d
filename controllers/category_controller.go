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

type CategoryController struct {
	Service *services.CategoryService
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{
		Service: services.NewCategoryService(repository.NewCategoryRepository(db)),
	}
}

// GET /categories
func (ctl *CategoryController) List(c *gin.Context) {
	cats, err := ctl.Service.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cats)
}

// POST /categories
func (ctl *CategoryController) Create(c *gin.Context) {
	var req entity.Category
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Service.Create(&req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, req)
}

// PUT /categories/:id
func (ctl *CategoryController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req entity.Category
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	req.ID = uint(id)
	if err := ctl.Service.Update(&req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, req)
}

// DELETE /categories/:id
func (ctl *CategoryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Service.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Category deleted"})
}
