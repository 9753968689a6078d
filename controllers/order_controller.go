package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pippali-pos/entity"
	"pippali-pos/pkg/resp"
	"pippali-pos/repository"
	"pippali-pos/services"
	"pippali-pos/ws"
)

type OrderController struct {
	Service *services.OrderService
	Hub     *ws.FloorHub
}

func NewOrderController(db *gorm.DB, hub *ws.FloorHub) *OrderController {
	return &OrderController{
		Service: services.NewOrderService(
			db,
			repository.NewOrderRepository(db),
			repository.NewMenuRepository(db),
			repository.NewOptionRepository(db),
		),
		Hub: hub,
	}
}

// POST /orders
func (ctl *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.Service.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders
func (ctl *OrderController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	orders, total, err := ctl.Service.List(page, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders, "total": total})
}

// GET /orders/:id
func (ctl *OrderController) Detail(c *gin.Context) {
	order, err := ctl.Service.Get(c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /orders/active?table_number=
func (ctl *OrderController) Active(c *gin.Context) {
	tableNumber := c.Query("table_number")
	if tableNumber == "" {
		resp.BadRequest(c, "table_number is required")
		return
	}

	order, err := ctl.Service.ResolveActiveOrder(tableNumber)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if order == nil {
		resp.NotFound(c, "no active order for table "+tableNumber)
		return
	}
	resp.OK(c, order)
}

// PATCH /orders/:id/status
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	var req struct {
		Status entity.OrderStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Service.UpdateStatus(c.Param("id"), req.Status); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Order status updated"})
}

// POST /orders/split
func (ctl *OrderController) Split(c *gin.Context) {
	var req struct {
		SourceTableNumber string                 `json:"source_table_number"`
		TargetSplits      []services.TargetSplit `json:"target_splits"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Service.Split(req.SourceTableNumber, req.TargetSplits); err != nil {
		resp.Error(c, err)
		return
	}
	ctl.Hub.Broadcast(ws.EventOrderSplit, gin.H{"source_table_number": req.SourceTableNumber})
	resp.OK(c, gin.H{"message": "Order split across tables"})
}
