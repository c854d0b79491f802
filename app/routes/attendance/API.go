package attendance

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ItsDeveloperChirag/HotelApp/app/config"
	"github.com/ItsDeveloperChirag/HotelApp/app/database"
	"github.com/ItsDeveloperChirag/HotelApp/app/models"
)

func parseStatus(s string) (models.AttendanceStatus, bool) {
	switch models.AttendanceStatus(s) {
	case models.Present, models.Absent, models.HalfDay:
		return models.AttendanceStatus(s), true
	}
	return "", false
}

func ListAttendanceAPI(c *fiber.Ctx) error {
	today := time.Now().Format("2006-01-02")
	start := c.Query("start", today)
	end := c.Query("end", today)

	if _, err := time.Parse("2006-01-02", start); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid start date. Use YYYY-MM-DD"})
	}
	if _, err := time.Parse("2006-01-02", end); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid end date. Use YYYY-MM-DD"})
	}

	records := database.ListAttendanceBetween(config.GetDB(), start, end)
	return c.JSON(fiber.Map{
		"attendance": records,
		"count":      len(records),
		"start":      start,
		"end":        end,
	})
}

func MarkAttendanceAPI(c *fiber.Ctx) error {
	type MarkRequest struct {
		EmployeeID int64  `json:"employee_id"`
		Date       string `json:"date"`
		Status     string `json:"status"`
	}

	var req MarkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date. Use YYYY-MM-DD"})
	}
	status, ok := parseStatus(req.Status)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Status must be Present, Absent or Half-day"})
	}

	if _, err := database.MarkAttendance(config.GetDB(), req.EmployeeID, req.Date, status); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to mark attendance"})
	}

	return c.JSON(fiber.Map{"message": "Attendance marked"})
}

func UpdateAttendanceAPI(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid attendance id"})
	}

	type UpdateRequest struct {
		Status string `json:"status"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	status, ok := parseStatus(req.Status)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Status must be Present, Absent or Half-day"})
	}

	updated, err := database.UpdateAttendance(config.GetDB(), id, status)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update attendance"})
	}
	if !updated {
		return c.Status(404).JSON(fiber.Map{"error": "Attendance record not found"})
	}

	return c.JSON(fiber.Map{"message": "Attendance updated"})
}

func DeleteAttendanceAPI(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid attendance id"})
	}

	deleted, err := database.DeleteAttendance(config.GetDB(), id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete attendance"})
	}
	if !deleted {
		return c.Status(404).JSON(fiber.Map{"error": "Attendance record not found"})
	}

	return c.JSON(fiber.Map{"message": "Attendance deleted"})
}
