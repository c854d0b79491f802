package salary

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ItsDeveloperChirag/HotelApp/app/config"
	"github.com/ItsDeveloperChirag/HotelApp/app/database"
	"github.com/ItsDeveloperChirag/HotelApp/app/payroll"
)

func parseMonthYear(c *fiber.Ctx) (int, int, error) {
	now := time.Now()
	month, err := strconv.Atoi(c.Query("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, errors.New("month must be between 1 and 12")
	}
	year, err := strconv.Atoi(c.Query("year", strconv.Itoa(now.Year())))
	if err != nil || year < 1 {
		return 0, 0, errors.New("invalid year")
	}
	return month, year, nil
}

func CalculateSalaryAPI(c *fiber.Ctx) error {
	employeeID, err := strconv.ParseInt(c.Params("employeeId"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid employee id"})
	}

	month, year, err := parseMonthYear(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	summary, err := payroll.CalculateNetSalary(config.GetDB(), employeeID, month, year)
	if errors.Is(err, payroll.ErrNoAttendance) {
		return c.Status(404).JSON(fiber.Map{"error": "No attendance records found for the selected period"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to calculate salary"})
	}

	return c.JSON(summary)
}

func ListAdvancesAPI(c *fiber.Ctx) error {
	employeeID, err := strconv.ParseInt(c.Query("employee_id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "employee_id is required"})
	}

	month, year, err := parseMonthYear(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	advances := database.GetAdvances(config.GetDB(), employeeID, month, year)
	return c.JSON(fiber.Map{
		"advances": advances,
		"count":    len(advances),
	})
}

func CreateAdvanceAPI(c *fiber.Ctx) error {
	type AdvanceRequest struct {
		EmployeeID int64   `json:"employee_id"`
		Amount     float64 `json:"amount"`
	}

	var req AdvanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Amount < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Amount must not be negative"})
	}

	if _, err := database.AddAdvance(config.GetDB(), req.EmployeeID, req.Amount); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record advance"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Advance recorded"})
}

func UpdateAdvanceAPI(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid advance id"})
	}

	type UpdateRequest struct {
		Amount float64 `json:"amount"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Amount < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Amount must not be negative"})
	}

	updated, err := database.UpdateAdvance(config.GetDB(), id, req.Amount)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update advance"})
	}
	if !updated {
		return c.Status(404).JSON(fiber.Map{"error": "Advance not found"})
	}

	return c.JSON(fiber.Map{"message": "Advance updated"})
}

func DeleteAdvanceAPI(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid advance id"})
	}

	deleted, err := database.DeleteAdvance(config.GetDB(), id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete advance"})
	}
	if !deleted {
		return c.Status(404).JSON(fiber.Map{"error": "Advance not found"})
	}

	return c.JSON(fiber.Map{"message": "Advance deleted"})
}
