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

type TableController struct {
	Service *services.TableService
	Hub     *ws.FloorHub
}

func NewTableController(db *gorm.DB, hub *ws.FloorHub) *TableController {
	return &TableController{
		Service: services.NewTableService(db, repository.NewTableRepository(db)),
		Hub:     hub,
	}
}

// GET /tables
func (ctl *TableController) List(c *gin.Context) {
	tables, err := ctl.Service.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, tables)
}

// POST /tables
func (ctl *TableController) Create(c *gin.Context) {
	var req entity.Table
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

// PUT /tables/:id
func (ctl *TableController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Number     *string  `json:"number"`
		Capacity   *int     `json:"capacity"`
		IsOccupied *bool    `json:"is_occupied"`
		PositionX  *float64 `json:"position_x"`
		PositionY  *float64 `json:"position_y"`
		Shape      *string  `json:"shape"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fields := map[string]any{}
	if req.Number != nil {
		fields["number"] = *req.Number
	}
	if req.Capacity != nil {
		fields["capacity"] = *req.Capacity
	}
	if req.IsOccupied != nil {
		fields["is_occupied"] = *req.IsOccupied
	}
	if req.PositionX != nil {
		fields["position_x"] = *req.PositionX
	}
	if req.PositionY != nil {
		fields["position_y"] = *req.PositionY
	}
	if req.Shape != nil {
		fields["shape"] = *req.Shape
	}

	table, err := ctl.Service.Update(uint(id), fields)
	if err != nil {
		resp.Error(c, err)
		return
	}
	ctl.Hub.Broadcast(ws.EventTableUpdated, table)
	resp.OK(c, table)
}

// DELETE /tables/:id
func (ctl *TableController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Service.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Table deleted"})
}

// POST /tables/join
func (ctl *TableController) Join(c *gin.Context) {
	var req struct {
		TableIDs []uint `json:"table_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	result, err := ctl.Service.Join(req.TableIDs)
	if err != nil {
		resp.Error(c, err)
		return
	}
	ctl.Hub.Broadcast(ws.EventTablesJoined, result)
	resp.OK(c, result)
}

// POST /tables/:id/disjoin
func (ctl *TableController) Disjoin(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		RemoveTableIDs []uint `json:"remove_table_ids"`
	}
	// Body is optional: no body means full disband.
	_ = c.ShouldBindJSON(&req)

	if err := ctl.Service.Disjoin(uint(id), req.RemoveTableIDs); err != nil {
		resp.Error(c, err)
		return
	}
	ctl.Hub.Broadcast(ws.EventTablesDisjoined, gin.H{"table_id": id})
	resp.OK(c, gin.H{"message": "Tables disjoined and positions restored"})
}
