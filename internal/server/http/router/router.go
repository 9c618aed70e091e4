package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/merchline/merchline/internal/domain/model"
	"github.com/merchline/merchline/internal/server/http/handlers"
	"github.com/merchline/merchline/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.CommerceFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)
	inventoryHandler := handlers.NewInventoryHandler(facade)
	reportHandler := handlers.NewReportHandler(facade)

	api := engine.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))

	authed.GET("/catalog", catalogHandler.Browse)
	authed.GET("/catalog/wholesalers/:id", catalogHandler.BrowseWholesaler)
	authed.GET("/catalog/products/:id", catalogHandler.Get)

	authed.GET("/orders/:id", orderHandler.Get)
	authed.POST("/orders/:id/cancel", orderHandler.Cancel)
	authed.GET("/orders/:id/transaction", paymentHandler.GetByOrder)
	authed.GET("/transactions/:id", paymentHandler.Get)
	authed.GET("/transactions/:id/payments", paymentHandler.List)
	authed.POST("/transactions/:id/payments", paymentHandler.Record)

	wholesaler := authed.Group("/wholesaler")
	wholesaler.Use(middleware.RequireRole(model.RoleWholesaler))
	wholesaler.POST("/products", catalogHandler.Create)
	wholesaler.GET("/products", catalogHandler.ListOwn)
	wholesaler.PUT("/products/:id", catalogHandler.Update)
	wholesaler.PUT("/products/:id/stock", catalogHandler.SetStock)
	wholesaler.GET("/orders", orderHandler.ListIncoming)
	wholesaler.POST("/orders/:id/process", orderHandler.Process)
	wholesaler.POST("/orders/:id/ship", orderHandler.Ship)
	wholesaler.GET("/reports/sales", reportHandler.Sales)
	wholesaler.GET("/reports/collection", reportHandler.Collection)

	retailer := authed.Group("/retailer")
	retailer.Use(middleware.RequireRole(model.RoleRetailer))
	retailer.GET("/cart", cartHandler.View)
	retailer.POST("/cart/items", cartHandler.Add)
	retailer.PUT("/cart/items/:id", cartHandler.UpdateQuantity)
	retailer.DELETE("/cart/items/:id", cartHandler.Remove)
	retailer.POST("/checkout", orderHandler.Checkout)
	retailer.POST("/orders/partner", orderHandler.CreatePartner)
	retailer.GET("/orders", orderHandler.ListOutgoing)
	retailer.POST("/orders/:id/deliver", orderHandler.Deliver)
	retailer.POST("/orders/:id/complete", orderHandler.Complete)
	retailer.GET("/inventory", inventoryHandler.List)
	retailer.PUT("/inventory/:id", inventoryHandler.UpdateLine)
	retailer.GET("/reports/spending", reportHandler.Spending)

	return engine
}
