// internal/router/router.go
package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/javajoker/natura-backend/internal/config"
	"github.com/javajoker/natura-backend/internal/database"
	"github.com/javajoker/natura-backend/internal/handlers"
	"github.com/javajoker/natura-backend/internal/metrics"
	"github.com/javajoker/natura-backend/internal/middleware"
	"github.com/javajoker/natura-backend/internal/services"
)

// Initialize builds the engine. Background work started for it, the rate
// limiter's eviction loop, stops when stop is closed.
func Initialize(db *gorm.DB, cfg *config.Config, stop <-chan struct{}) *gin.Engine {
	store := database.NewStore(db)

	// Initialize services
	orderService := services.NewOrderService(store)
	clientService := services.NewClientService(store)
	productService := services.NewProductService(store)

	// Initialize handlers
	orderHandler := handlers.NewOrderHandler(orderService)
	clientHandler := handlers.NewClientHandler(clientService)
	productHandler := handlers.NewProductHandler(productService)
	healthHandler := handlers.NewHealthHandler(db)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimit(cfg.RateLimit, stop))

	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Product catalog
	r.GET("/buscar-producto", productHandler.SearchProducts)
	r.GET("/buscarProductoExact", productHandler.FindProductExact)

	// Orders
	r.POST("/crear-pedido", orderHandler.CreateOrder)
	pedidos := r.Group("/pedidos")
	{
		pedidos.GET("", orderHandler.ListOrders)
		pedidos.GET("/detalle", orderHandler.ListOrdersDetailed)
		pedidos.GET("/resumen", orderHandler.SummarizeOrders)
		pedidos.GET("/cliente/:clienteId", orderHandler.ListOrdersByClient)
		pedidos.GET("/:id", orderHandler.GetOrder)
		pedidos.PUT("/:id", orderHandler.EditOrder)
		pedidos.DELETE("/:id", orderHandler.DeleteOrder)
	}

	// Clients
	r.POST("/crear-cliente", clientHandler.CreateClient)
	clientes := r.Group("/clientes")
	{
		clientes.GET("", clientHandler.ListClients)
		clientes.GET("/:id", clientHandler.GetClient)
		clientes.PUT("/:id", clientHandler.EditClient)
		clientes.DELETE("/:id", clientHandler.DeleteClient)
	}

	r.GET("/debug/items", orderHandler.ListItems)

	return r
}
