package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/ItsDeveloperChirag/HotelApp/app/models"
)

// UpsertInventoryItem writes a stock line keyed by item name: an existing
// row with the same name is replaced, which assigns a fresh id. Item
// identity is therefore the name, not the id.
func UpsertInventoryItem(db *sql.DB, itemName string, quantity float64, unit string) (bool, error) {
	_, err := db.Exec(`INSERT OR REPLACE INTO inventory (item_name, quantity, unit, last_updated)
		VALUES (?, ?, ?, ?)`,
		itemName, quantity, unit, time.Now().Format("2006-01-02 15:04:05"))
	if err != nil {
		return false, fmt.Errorf("failed to update inventory: %w", err)
	}
	return true, nil
}

func DeleteInventoryItem(db *sql.DB, itemID int64) (bool, error) {
	res, err := db.Exec(`DELETE FROM inventory WHERE id = ?`, itemID)
	if err != nil {
		return false, fmt.Errorf("failed to delete inventory item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete inventory item: %w", err)
	}
	return n > 0, nil
}

// GetInventory returns all stock lines in storage order.
func GetInventory(db *sql.DB) []models.InventoryItem {
	rows, err := db.Query(`SELECT id, item_name, quantity, unit, last_updated FROM inventory`)
	if err != nil {
		log.Printf("Error fetching inventory: %v", err)
		return []models.InventoryItem{}
	}
	defer rows.Close()

	items := []models.InventoryItem{}
	for rows.Next() {
		var item models.InventoryItem
		if err := rows.Scan(&item.ID, &item.ItemName, &item.Quantity, &item.Unit, &item.LastUpdated); err != nil {
			log.Printf("Error scanning inventory row: %v", err)
			continue
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		log.Printf("Error iterating inventory: %v", err)
		return []models.InventoryItem{}
	}
	return items
}
