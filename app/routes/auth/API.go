package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ItsDeveloperChirag/HotelApp/app/config"
	"github.com/ItsDeveloperChirag/HotelApp/app/database"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	ok, err := database.VerifyAdmin(config.GetDB(), req.Username, req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	token, err := GenerateJWT(req.Username)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(sessionDuration),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message":  "Login successful",
		"username": req.Username,
		"token":    token,
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{"message": "Logged out"})
}

func ChangePasswordAPI(c *fiber.Ctx) error {
	type ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.NewPassword == "" {
		return c.Status(400).JSON(fiber.Map{"error": "New password is required"})
	}

	username := c.Locals("username").(string)

	ok, err := database.VerifyAdmin(config.GetDB(), username, req.CurrentPassword)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Current password is incorrect"})
	}

	changed, err := database.ChangeAdminPassword(config.GetDB(), username, req.NewPassword)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to change password"})
	}
	if !changed {
		return c.Status(404).JSON(fiber.Map{"error": "Account not found"})
	}

	return c.JSON(fiber.Map{"message": "Password changed"})
}
