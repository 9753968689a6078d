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

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{
		Service: services.NewMenuService(
			repository.NewMenuRepository(db),
			repository.NewOptionRepository(db),
		),
	}
}

type menuItemReq struct {
	CategoryID     *uint   `json:"category_id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	BasePrice      float64 `json:"base_price"`
	ImageURL       string  `json:"image_url"`
	DishType       string  `json:"dish_type"`
	IsVegetarian   bool    `json:"is_vegetarian"`
	IsVegan        bool    `json:"is_vegan"`
	IsGlutenFree   bool    `json:"is_gluten_free"`
	IsActive       *bool   `json:"is_active"`
	IsAvailable    *bool   `json:"is_available"`
	SortOrder      int     `json:"sort_order"`
	OptionGroupIDs []uint  `json:"option_group_ids"`
}

func (r *menuItemReq) toEntity() *entity.MenuItem {
	item := &entity.MenuItem{
		CategoryID:   r.CategoryID,
		Name:         r.Name,
		Description:  r.Description,
		BasePrice:    r.BasePrice,
		ImageURL:     r.ImageURL,
		DishType:     r.DishType,
		IsVegetarian: r.IsVegetarian,
		IsVegan:      r.IsVegan,
		IsGlutenFree: r.IsGlutenFree,
		SortOrder:    r.SortOrder,
		IsActive:     true,
		IsAvailable:  true,
	}
	if r.IsActive != nil {
		item.IsActive = *r.IsActive
	}
	if r.IsAvailable != nil {
		item.IsAvailable = *r.IsAvailable
	}
	return item
}

// GET /menu
func (ctl *MenuController) List(c *gin.Context) {
	items, err := ctl.Service.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /menu/:id
func (ctl *MenuController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	item, err := ctl.Service.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /menu
func (ctl *MenuController) Create(c *gin.Context) {
	var req menuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := req.toEntity()
	if err := ctl.Service.Create(item, req.OptionGroupIDs); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /menu/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req menuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := req.toEntity()
	item.ID = uint(id)
	if err := ctl.Service.Update(item, req.OptionGroupIDs); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Service.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Menu item deleted"})
}
