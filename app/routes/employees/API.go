package employees

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ItsDeveloperChirag/HotelApp/app/config"
	"github.com/ItsDeveloperChirag/HotelApp/app/database"
)

func ListEmployeesAPI(c *fiber.Ctx) error {
	list := database.GetEmployees(config.GetDB())
	return c.JSON(fiber.Map{
		"employees": list,
		"count":     len(list),
	})
}

func CreateEmployeeAPI(c *fiber.Ctx) error {
	type EmployeeRequest struct {
		Name       string  `json:"name"`
		NationalID string  `json:"national_id"`
		Phone      string  `json:"phone"`
		Address    string  `json:"address"`
		DailyWage  float64 `json:"daily_wage"`
	}

	var req EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Name == "" || req.NationalID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Name and national id are required"})
	}
	if req.DailyWage < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Daily wage must not be negative"})
	}

	ok, err := database.AddEmployee(config.GetDB(), req.Name, req.NationalID, req.Phone, req.Address, req.DailyWage)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to add employee"})
	}
	if !ok {
		return c.Status(409).JSON(fiber.Map{"error": "An employee with this national id already exists"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Employee added"})
}

func UpdateEmployeeAPI(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid employee id"})
	}

	type EmployeeUpdateRequest struct {
		Name      string  `json:"name"`
		Phone     string  `json:"phone"`
		Address   string  `json:"address"`
		DailyWage float64 `json:"daily_wage"`
	}

	var req EmployeeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.DailyWage < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Daily wage must not be negative"})
	}

	ok, err := database.UpdateEmployee(config.GetDB(), id, req.Name, req.Phone, req.Address, req.DailyWage)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update employee"})
	}
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Employee not found"})
	}

	return c.JSON(fiber.Map{"message": "Employee updated"})
}

func DeleteEmployeeAPI(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid employee id"})
	}

	ok, err := database.DeleteEmployee(config.GetDB(), id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete employee"})
	}
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Employee not found"})
	}

	return c.JSON(fiber.Map{"message": "Employee deleted"})
}
