package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jewelerp/backend/internal/domain/identity"
	"github.com/jewelerp/backend/internal/infrastructure/auth"
	"github.com/jewelerp/backend/internal/infrastructure/config"
	"github.com/jewelerp/backend/internal/infrastructure/logger"
	"github.com/jewelerp/backend/internal/interfaces/http/handler"
	"github.com/jewelerp/backend/internal/interfaces/http/middleware"
)

// Handlers bundles every HTTP handler the router mounts
type Handlers struct {
	Auth          *handler.AuthHandler
	Shop          *handler.ShopHandler
	User          *handler.UserHandler
	Product       *handler.ProductHandler
	Rate          *handler.RateHandler
	Stock         *handler.StockHandler
	Customer      *handler.CustomerHandler
	Supplier      *handler.SupplierHandler
	PurchaseOrder *handler.PurchaseOrderHandler
	SalesOrder    *handler.SalesOrderHandler
	Emi           *handler.EmiHandler
	Finance       *handler.FinanceHandler
	Audit         *handler.AuditHandler
	System        *handler.SystemHandler
}

// New assembles the gin engine with all middleware and routes
func New(cfg *config.Config, log *zap.Logger, jwtService *auth.JWTService, shops middleware.ShopDirectory, h Handlers) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	registerValidations()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	}

	engine.Use(
		middleware.RequestID(),
		logger.AccessLog(log),
		logger.Recovery(log),
		middleware.CORS(middleware.CORSConfig{
			AllowOrigins: cfg.HTTP.CORSAllowOrigins,
			AllowMethods: cfg.HTTP.CORSAllowMethods,
			AllowHeaders: cfg.HTTP.CORSAllowHeaders,
		}),
	)

	engine.GET("/health", h.System.Health)
	engine.GET("/ready", h.System.Ready)

	v1 := engine.Group("/api/v1")

	// Public endpoints.
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/refresh", h.Auth.Refresh)
	}

	// Everything below requires a valid access token.
	authed := v1.Group("")
	authed.Use(middleware.JWTAuthMiddleware(jwtService))

	authed.GET("/auth/me", h.Auth.Me)

	// Platform administration, not bound to a shop.
	admin := authed.Group("/admin")
	admin.Use(middleware.RequireRole(string(identity.RoleSuperAdmin)))
	{
		admin.POST("/shops", h.Shop.Create)
		admin.GET("/shops", h.Shop.List)
		admin.GET("/shops/:id", h.Shop.Get)
		admin.PUT("/shops/:id", h.Shop.Update)
		admin.POST("/shops/:id/pause", h.Shop.Pause)
		admin.POST("/shops/:id/resume", h.Shop.Resume)
		admin.PUT("/shops/:id/subscription", h.Shop.SetSubscription)
		admin.DELETE("/shops/:id", h.Shop.Delete)
	}

	// Shop-scoped resources. ShopContext resolves the tenant from the token
	// claims, or from the X-Shop-ID header for super admins.
	shop := authed.Group("")
	shop.Use(middleware.ShopContext(shops))

	manager := middleware.RequireRole(
		string(identity.RoleSuperAdmin),
		string(identity.RoleOwner),
		string(identity.RoleManager),
	)
	owner := middleware.RequireRole(
		string(identity.RoleSuperAdmin),
		string(identity.RoleOwner),
	)

	users := shop.Group("/users")
	users.Use(owner)
	{
		users.POST("", h.User.Create)
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}

	products := shop.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/:id", h.Product.Get)
		products.GET("/:id/price", h.Product.QuotePrice)
		products.GET("/barcode/:barcode", h.Product.GetByBarcode)
		products.POST("", manager, h.Product.Create)
		products.PUT("/:id", manager, h.Product.Update)
		products.DELETE("/:id", manager, h.Product.Delete)
	}

	rates := shop.Group("/rates")
	{
		rates.GET("/active", h.Rate.Active)
		rates.GET("/history", h.Rate.History)
		rates.POST("", manager, h.Rate.Publish)
	}

	stock := shop.Group("/stock")
	{
		stock.GET("", h.Stock.List)
		stock.GET("/available", h.Stock.Available)
		stock.GET("/value", h.Stock.InventoryValue)
		stock.GET("/tag/:tag", h.Stock.GetByTagID)
		stock.GET("/:id", h.Stock.Get)
	}

	customers := shop.Group("/customers")
	{
		customers.POST("", h.Customer.Create)
		customers.GET("", h.Customer.List)
		customers.GET("/phone/:phone", h.Customer.GetByPhone)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.POST("/:id/block", manager, h.Customer.Block)
		customers.POST("/:id/unblock", manager, h.Customer.Unblock)
		customers.DELETE("/:id", manager, h.Customer.Delete)
	}

	suppliers := shop.Group("/suppliers")
	{
		suppliers.POST("", manager, h.Supplier.Create)
		suppliers.GET("", h.Supplier.List)
		suppliers.GET("/:id", h.Supplier.Get)
		suppliers.PUT("/:id", manager, h.Supplier.Update)
		suppliers.POST("/:id/activate", manager, h.Supplier.Activate)
		suppliers.POST("/:id/deactivate", manager, h.Supplier.Deactivate)
		suppliers.DELETE("/:id", manager, h.Supplier.Delete)
	}

	purchaseOrders := shop.Group("/purchase-orders")
	{
		purchaseOrders.POST("", manager, h.PurchaseOrder.Create)
		purchaseOrders.GET("", h.PurchaseOrder.List)
		purchaseOrders.GET("/:id", h.PurchaseOrder.Get)
		purchaseOrders.POST("/:id/confirm", manager, h.PurchaseOrder.Confirm)
		purchaseOrders.POST("/:id/receive", manager, h.PurchaseOrder.ReceiveStock)
		purchaseOrders.POST("/:id/payments", manager, h.PurchaseOrder.RecordPayment)
		purchaseOrders.POST("/:id/close", manager, h.PurchaseOrder.Close)
		purchaseOrders.POST("/:id/cancel", manager, h.PurchaseOrder.Cancel)
	}

	salesOrders := shop.Group("/sales-orders")
	{
		salesOrders.POST("", h.SalesOrder.Create)
		salesOrders.GET("", h.SalesOrder.List)
		salesOrders.GET("/:id", h.SalesOrder.Get)
		salesOrders.POST("/:id/complete", h.SalesOrder.Complete)
		salesOrders.POST("/:id/cancel", h.SalesOrder.Cancel)
		salesOrders.POST("/:id/payments", h.SalesOrder.RecordPayment)
	}

	emi := shop.Group("/emi")
	{
		emi.POST("", h.Emi.CreatePlan)
		emi.GET("", h.Emi.List)
		emi.POST("/sweep", manager, h.Emi.SweepOverdue)
		emi.GET("/customer/:customer_id", h.Emi.ListByCustomer)
		emi.GET("/:id", h.Emi.Get)
		emi.POST("/:id/payments", h.Emi.PayInstallment)
	}

	transactions := shop.Group("/transactions")
	transactions.Use(manager)
	{
		transactions.GET("", h.Finance.ListTransactions)
		transactions.GET("/summary", h.Finance.Summary)
	}

	auditLogs := shop.Group("/audit-logs")
	auditLogs.Use(owner)
	{
		auditLogs.GET("", h.Audit.List)
		auditLogs.GET("/entity/:entity_id", h.Audit.EntityHistory)
	}

	return engine
}
