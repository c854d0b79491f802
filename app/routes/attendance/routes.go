package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ItsDeveloperChirag/HotelApp/app/routes/auth"
)

func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware)

	api.Get("/", ListAttendanceAPI)
	api.Post("/", MarkAttendanceAPI)
	api.Put("/:id", UpdateAttendanceAPI)
	api.Delete("/:id", DeleteAttendanceAPI)
}
