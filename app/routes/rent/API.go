package rent

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ItsDeveloperChirag/HotelApp/app/config"
	"github.com/ItsDeveloperChirag/HotelApp/app/database"
	"github.com/ItsDeveloperChirag/HotelApp/app/models"
)

func parseRentStatus(s string) (models.RentStatus, bool) {
	switch models.RentStatus(s) {
	case models.RentPending, models.RentPaid:
		return models.RentStatus(s), true
	}
	return "", false
}

func ListRentPaymentsAPI(c *fiber.Ctx) error {
	payments := database.GetRentPayments(config.GetDB())
	return c.JSON(fiber.Map{
		"rent_payments": payments,
		"count":         len(payments),
	})
}

func CreateRentPaymentAPI(c *fiber.Ctx) error {
	type RentRequest struct {
		DueDate string  `json:"due_date"`
		Amount  float64 `json:"amount"`
		Status  string  `json:"status"`
	}

	var req RentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if _, err := time.Parse("2006-01-02", req.DueDate); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid due date. Use YYYY-MM-DD"})
	}
	if req.Amount < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Amount must not be negative"})
	}
	status, ok := parseRentStatus(req.Status)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Status must be Pending or Paid"})
	}

	if _, err := database.AddRentPayment(config.GetDB(), req.DueDate, req.Amount, status); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to add rent payment"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Rent payment added"})
}

func UpdateRentPaymentAPI(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid payment id"})
	}

	type UpdateRequest struct {
		Amount float64 `json:"amount"`
		Status string  `json:"status"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Amount < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Amount must not be negative"})
	}
	status, ok := parseRentStatus(req.Status)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Status must be Pending or Paid"})
	}

	updated, err := database.UpdateRentPayment(config.GetDB(), id, req.Amount, status)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update rent payment"})
	}
	if !updated {
		return c.Status(404).JSON(fiber.Map{"error": "Rent payment not found"})
	}

	return c.JSON(fiber.Map{"message": "Rent payment updated"})
}

func DeleteRentPaymentAPI(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid payment id"})
	}

	deleted, err := database.DeleteRentPayment(config.GetDB(), id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete rent payment"})
	}
	if !deleted {
		return c.Status(404).JSON(fiber.Map{"error": "Rent payment not found"})
	}

	return c.JSON(fiber.Map{"message": "Rent payment deleted"})
}
