package employees

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ItsDeveloperChirag/HotelApp/app/routes/auth"
)

func SetupEmployeeRoutes(app *fiber.App) {
	api := app.Group("/api/employees")
	api.Use(auth.AuthMiddleware)

	api.Get("/", ListEmployeesAPI)
	api.Post("/", CreateEmployeeAPI)
	api.Put("/:id", UpdateEmployeeAPI)
	api.Delete("/:id", DeleteEmployeeAPI)
}
