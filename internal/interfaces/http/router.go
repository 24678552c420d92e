package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-pos-api/internal/application/analytics"
	"github.com/jhoicas/retail-pos-api/internal/application/auth"
	"github.com/jhoicas/retail-pos-api/internal/application/sale"
	"github.com/jhoicas/retail-pos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	SaleUC        *sale.UseCase
	AnalyticsUC   *analytics.UseCase
	InventoryUC   *usecase.InventoryUseCase
	SupplierUC    *usecase.SupplierUseCase
	CategoryUC    *usecase.CategoryUseCase
	UserUC        *usecase.UserUseCase
	CustomerUC    *usecase.CustomerUseCase
	JWTSecret     string
	JWTExpMinutes int
}

// Router registra las rutas de la API. Las rutas literales van antes que las
// paramétricas del mismo prefijo (p. ej. /sales/filtered antes de
// /sales/:id) para que no las capture el parámetro.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público, logout con sesión)
	authHandler := NewAuthHandler(deps.AuthUC, deps.JWTExpMinutes)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (Bearer token o cookie de sesión)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/auth/logout", authHandler.Logout)

	// Ventas
	saleHandler := NewSaleHandler(deps.SaleUC, deps.AnalyticsUC)
	protected.Get("/sales", saleHandler.List)
	protected.Post("/sales", saleHandler.Create)
	protected.Get("/sales/filtered", RequireStaff(), saleHandler.Filtered)
	protected.Get("/sales/recent", saleHandler.Recent)
	protected.Get("/sales/:id", RequireStaff(), saleHandler.Get)
	protected.Put("/sales/:id", RequireStaff(), saleHandler.Update)
	protected.Delete("/sales/:id", RequireStaff(), saleHandler.Delete)

	// Inventario (el alta verifica el rol dentro del handler)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	protected.Get("/inventory", inventoryHandler.List)
	protected.Post("/inventory", inventoryHandler.Create)
	protected.Get("/inventory/:id", RequireStaff(), inventoryHandler.Get)
	protected.Put("/inventory/:id", RequireStaff(), inventoryHandler.Update)
	protected.Delete("/inventory/:id", RequireStaff(), inventoryHandler.Delete)

	// Proveedores (staff)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers := protected.Group("/suppliers", RequireStaff())
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.Get)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Categorías (solo admin)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := protected.Group("/categories", RequireAdmin())
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.Get)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Usuarios y cuentas (solo admin)
	accountHandler := NewAccountHandler(deps.UserUC)
	protected.Get("/users", RequireAdmin(), accountHandler.Users)
	protected.Get("/user/:id", RequireAdmin(), accountHandler.GetUser)
	protected.Put("/user/:id", RequireAdmin(), accountHandler.UpdateUser)
	protected.Delete("/user/:id", RequireAdmin(), accountHandler.DeleteUser)
	accounts := protected.Group("/accounts", RequireAdmin())
	accounts.Get("/", accountHandler.Accounts)
	accounts.Post("/", accountHandler.CreateAccount)
	accounts.Get("/:id", accountHandler.GetAccount)
	accounts.Put("/:id", accountHandler.UpdateAccount)
	accounts.Delete("/:id", accountHandler.DeleteAccount)

	// Clientes: analítica y perfiles. /customers/update antes de
	// /customers/:name.
	customerHandler := NewCustomerHandler(deps.AnalyticsUC, deps.CustomerUC)
	protected.Get("/customers", customerHandler.List)
	protected.Post("/customers/update", RequireStaff(), customerHandler.Update)
	protected.Get("/customers/:name", customerHandler.Profile)
	protected.Get("/customers/:name/purchases", RequireStaff(), customerHandler.Purchases)
	protected.Get("/customers/:name/summary", RequireStaff(), customerHandler.Summary)
	protected.Get("/customers/:name/spending_by_item_category", RequireStaff(), customerHandler.Spending)
	protected.Get("/customers/:name/spending_table", RequireStaff(), customerHandler.SpendingTable)
	protected.Get("/customers/:name/top_items_monthly_spending", RequireStaff(), customerHandler.TopItemsMonthly)
}
