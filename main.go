package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/ItsDeveloperChirag/HotelApp/app/config"
	"github.com/ItsDeveloperChirag/HotelApp/app/database"
	"github.com/ItsDeveloperChirag/HotelApp/app/routes/attendance"
	"github.com/ItsDeveloperChirag/HotelApp/app/routes/auth"
	"github.com/ItsDeveloperChirag/HotelApp/app/routes/dashboard"
	"github.com/ItsDeveloperChirag/HotelApp/app/routes/employees"
	"github.com/ItsDeveloperChirag/HotelApp/app/routes/inventory"
	"github.com/ItsDeveloperChirag/HotelApp/app/routes/rent"
	"github.com/ItsDeveloperChirag/HotelApp/app/routes/salary"
)

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	config.LoadEnv()
	config.InitDB()
	defer config.GetDB().Close()

	if err := database.Init(config.GetDB()); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "Hotel Management System",
		ErrorHandler: customErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	employees.SetupEmployeeRoutes(app)
	attendance.SetupAttendanceRoutes(app)
	salary.SetupSalaryRoutes(app)
	inventory.SetupInventoryRoutes(app)
	rent.SetupRentRoutes(app)

	addr := ":" + config.AppConfig.Port
	log.Printf("Server listening on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatal(err)
	}
}
