package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-api/internal/application/auth"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	InventoryUC *inventory.UseCase
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	UserRepo    repository.UserRepository
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	requireAuth := AuthMiddleware(deps.JWTSecret, deps.UserRepo)
	authGroup.Get("/me", requireAuth, authHandler.Me)

	// Inventario (protegido; las mutaciones además exigen permiso)
	inv := app.Group("/inventory", requireAuth)

	products := inv.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	products.Get("/", productHandler.List)
	products.Post("/", RequirePermission(entity.PermManageProducts), productHandler.Create)
	// Registrada antes de /:id para que "low-stock" no se capture como ID.
	products.Get("/low-stock", RequirePermission(entity.PermViewReports), productHandler.ListLowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", RequirePermission(entity.PermManageProducts), productHandler.Update)
	products.Post("/:id/adjust", RequirePermission(entity.PermAdjustStock), inventoryHandler.AdjustStock)
	products.Get("/:id/transactions", inventoryHandler.Transactions)

	categories := inv.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", RequirePermission(entity.PermManageCategories), categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
}
