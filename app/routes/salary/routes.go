package salary

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ItsDeveloperChirag/HotelApp/app/routes/auth"
)

func SetupSalaryRoutes(app *fiber.App) {
	salaryAPI := app.Group("/api/salary")
	salaryAPI.Use(auth.AuthMiddleware)
	salaryAPI.Get("/:employeeId", CalculateSalaryAPI)

	advancesAPI := app.Group("/api/advances")
	advancesAPI.Use(auth.AuthMiddleware)
	advancesAPI.Get("/", ListAdvancesAPI)
	advancesAPI.Post("/", CreateAdvanceAPI)
	advancesAPI.Put("/:id", UpdateAdvanceAPI)
	advancesAPI.Delete("/:id", DeleteAdvanceAPI)
}
