package inventory

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ItsDeveloperChirag/HotelApp/app/routes/auth"
)

func SetupInventoryRoutes(app *fiber.App) {
	api := app.Group("/api/inventory")
	api.Use(auth.AuthMiddleware)

	api.Get("/", ListInventoryAPI)
	api.Post("/", UpsertInventoryAPI)
	api.Delete("/:id", DeleteInventoryAPI)
}
