package inventory

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ItsDeveloperChirag/HotelApp/app/config"
	"github.com/ItsDeveloperChirag/HotelApp/app/database"
)

func ListInventoryAPI(c *fiber.Ctx) error {
	items := database.GetInventory(config.GetDB())
	return c.JSON(fiber.Map{
		"inventory": items,
		"count":     len(items),
	})
}

func UpsertInventoryAPI(c *fiber.Ctx) error {
	type InventoryRequest struct {
		ItemName string  `json:"item_name"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
	}

	var req InventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.ItemName == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Item name is required"})
	}
	if req.Quantity < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Quantity must not be negative"})
	}

	if _, err := database.UpsertInventoryItem(config.GetDB(), req.ItemName, req.Quantity, req.Unit); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update inventory"})
	}

	return c.JSON(fiber.Map{"message": "Inventory updated"})
}

func DeleteInventoryAPI(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item id"})
	}

	deleted, err := database.DeleteInventoryItem(config.GetDB(), id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete inventory item"})
	}
	if !deleted {
		return c.Status(404).JSON(fiber.Map{"error": "Inventory item not found"})
	}

	return c.JSON(fiber.Map{"message": "Inventory item deleted"})
}
