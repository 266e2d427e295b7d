package router

import (
	"github.com/fuelpos/backend/internal/infrastructure/auth"
	"github.com/fuelpos/backend/internal/interfaces/http/handler"
	"github.com/fuelpos/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers bundles the HTTP handlers registered by Setup
type Handlers struct {
	Auth     *handler.AuthHandler
	Party    *handler.PartyHandler
	Product  *handler.ProductHandler
	Sale     *handler.SaleHandler
	Purchase *handler.PurchaseHandler
	Finance  *handler.FinanceHandler
	Ledger   *handler.LedgerHandler
	Report   *handler.ReportHandler
	Tank     *handler.TankHandler
}

// Setup registers all API routes on the engine under /api/v1.
// Login is the only public API route; everything else sits behind JWT
// authentication, and user management additionally requires the admin role.
func Setup(engine *gin.Engine, jwtService *auth.JWTService, h Handlers) {
	api := engine.Group("/api/v1")

	// Public routes
	api.POST("/auth/login", h.Auth.Login)

	// Authenticated routes
	protected := api.Group("")
	protected.Use(middleware.JWTAuthMiddleware(jwtService))

	// Identity
	protected.GET("/auth/me", h.Auth.Me)
	protected.PUT("/auth/password", h.Auth.ChangePassword)

	admin := protected.Group("/users")
	admin.Use(middleware.RequireAdmin())
	admin.POST("", h.Auth.CreateUser)
	admin.POST("/:id/deactivate", h.Auth.DeactivateUser)

	// Parties (customers, employees, partners, suppliers)
	protected.POST("/parties", h.Party.Create)
	protected.GET("/parties", h.Party.List)
	protected.GET("/parties/:id", h.Party.Get)
	protected.PUT("/parties/:id", h.Party.Update)
	protected.DELETE("/parties/:id", h.Party.Delete)

	// Product catalog
	protected.POST("/products", h.Product.Create)
	protected.GET("/products", h.Product.List)
	protected.GET("/products/:id", h.Product.Get)
	protected.PUT("/products/:id", h.Product.Update)
	protected.DELETE("/products/:id", h.Product.Delete)

	// Sales
	protected.POST("/sales", h.Sale.Create)
	protected.GET("/sales", h.Sale.List)
	protected.GET("/sales/:id", h.Sale.Get)
	protected.DELETE("/sales/:id", h.Sale.Delete)

	// Purchases and purchase returns
	protected.POST("/purchases", h.Purchase.Create)
	protected.GET("/purchases", h.Purchase.List)
	protected.GET("/purchases/:id", h.Purchase.Get)
	protected.DELETE("/purchases/:id", h.Purchase.Delete)
	protected.POST("/purchase-returns", h.Purchase.CreateReturn)
	protected.GET("/purchase-returns", h.Purchase.ListReturns)
	protected.DELETE("/purchase-returns/:id", h.Purchase.DeleteReturn)

	// Finance events
	protected.POST("/payments/customer", h.Finance.CreateCustomerPayment)
	protected.GET("/payments/customer", h.Finance.ListCustomerPayments)
	protected.POST("/payments/supplier", h.Finance.CreateSupplierPayment)
	protected.GET("/payments/supplier", h.Finance.ListSupplierPayments)
	protected.POST("/cash-advances", h.Finance.CreateCashAdvance)
	protected.GET("/cash-advances", h.Finance.ListCashAdvances)
	protected.POST("/capital-entries", h.Finance.CreateCapitalEntry)
	protected.GET("/capital-entries", h.Finance.ListCapitalEntries)
	protected.POST("/expenses", h.Finance.CreateExpense)
	protected.GET("/expenses", h.Finance.ListExpenses)
	protected.DELETE("/expenses/:id", h.Finance.DeleteExpense)

	// Unified ledger and balances
	protected.GET("/ledger", h.Ledger.Get)
	protected.DELETE("/ledger/entries/:id", h.Ledger.DeleteEntry)
	protected.GET("/balances", h.Ledger.Balances)

	// Reports
	protected.GET("/reports/daily-summary", h.Report.DailySummary)
	protected.GET("/reports/profit", h.Report.PeriodProfit)
	protected.GET("/reports/profit-by-product", h.Report.ProfitByProduct)
	protected.GET("/reports/sales/:id/profit", h.Report.SaleProfit)

	// Tank readings
	protected.POST("/tank-readings", h.Tank.Create)
	protected.GET("/tank-readings", h.Tank.List)
	protected.DELETE("/tank-readings/:id", h.Tank.Delete)
}
