package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ItsDeveloperChirag/HotelApp/app/config"
	"github.com/ItsDeveloperChirag/HotelApp/app/database"
	"github.com/ItsDeveloperChirag/HotelApp/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetDashboardStatsAPI)
}

func GetDashboardStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load dashboard stats"})
	}
	return c.JSON(stats)
}
