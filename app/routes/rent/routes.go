package rent

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ItsDeveloperChirag/HotelApp/app/routes/auth"
)

func SetupRentRoutes(app *fiber.App) {
	api := app.Group("/api/rent")
	api.Use(auth.AuthMiddleware)

	api.Get("/", ListRentPaymentsAPI)
	api.Post("/", CreateRentPaymentAPI)
	api.Put("/:id", UpdateRentPaymentAPI)
	api.Delete("/:id", DeleteRentPaymentAPI)
}
