package routes

import (
	"github.com/gin-gonic/gin"

	"pippali-pos/configs"
	"pippali-pos/controllers"
	"pippali-pos/middlewares"
	"pippali-pos/pkg/logger"
	"pippali-pos/ws"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, hub *ws.FloorHub) {
	r.Use(middlewares.CORSMiddleware())
	r.Use(logger.RequestLogger())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Controllers
	authCtrl := controllers.NewAuthController(db, cfg)
	menuCtrl := controllers.NewMenuController(db)
	catCtrl := controllers.NewCategoryController(db)
	optCtrl := controllers.NewOptionController(db)
	tableCtrl := controllers.NewTableController(db, hub)
	orderCtrl := controllers.NewOrderController(db, hub)
	chatCtrl := controllers.NewChatController(db, cfg.GeminiAPIKey)

	v1 := r.Group("/api/v1")

	// Auth (public)
	v1.POST("/auth/login", authCtrl.Login)

	// Catalog (public reads)
	v1.GET("/menu", menuCtrl.List)
	v1.GET("/menu/:id", menuCtrl.Get)
	v1.GET("/categories", catCtrl.List)
	v1.GET("/option-groups", optCtrl.ListGroups)
	v1.GET("/option-groups/:id", optCtrl.GetGroup)

	// Catalog (admin)
	catalog := v1.Group("", middlewares.AuthMiddleware(cfg, "admin"))
	{
		catalog.POST("/menu", menuCtrl.Create)
		catalog.PUT("/menu/:id", menuCtrl.Update)
		catalog.DELETE("/menu/:id", menuCtrl.Delete)

		catalog.POST("/categories", catCtrl.Create)
		catalog.PUT("/categories/:id", catCtrl.Update)
		catalog.DELETE("/categories/:id", catCtrl.Delete)

		catalog.POST("/option-groups", optCtrl.CreateGroup)
		catalog.DELETE("/option-groups/:id", optCtrl.DeleteGroup)
		catalog.POST("/option-groups/:id/options", optCtrl.CreateOption)
		catalog.DELETE("/option-groups/options/:optionId", optCtrl.DeleteOption)
	}

	// Floor plan
	v1.GET("/tables", tableCtrl.List)
	v1.POST("/tables/join", tableCtrl.Join)
	v1.POST("/tables/:id/disjoin", tableCtrl.Disjoin)
	tables := v1.Group("/tables", middlewares.AuthMiddleware(cfg, "admin"))
	{
		tables.POST("", tableCtrl.Create)
		tables.PUT("/:id", tableCtrl.Update)
		tables.DELETE("/:id", tableCtrl.Delete)
	}

	// Orders
	v1.POST("/orders", orderCtrl.Create)
	v1.GET("/orders", orderCtrl.List)
	v1.GET("/orders/active", orderCtrl.Active)
	v1.GET("/orders/:id", orderCtrl.Detail)
	v1.POST("/orders/split", orderCtrl.Split)
	v1.PATCH("/orders/:id/status", middlewares.AuthMiddleware(cfg, "admin"), orderCtrl.UpdateStatus)

	// AI waiter
	v1.POST("/chat", chatCtrl.Chat)

	// Floor events feed
	r.GET("/ws/floor", hub.HandleWebSocket)
}
