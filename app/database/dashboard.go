package database

import (
	"database/sql"
	"time"

	"github.com/ItsDeveloperChirag/HotelApp/app/models"
)

// GetDashboardStats returns the summary counts for the back-office landing
// view: headcount, today's presence, stock lines and unpaid rent.
func GetDashboardStats(db *sql.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	err := db.QueryRow(`SELECT COUNT(*) FROM employees`).Scan(&stats.TotalEmployees)
	if err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	err = db.QueryRow(`SELECT COUNT(*) FROM attendance WHERE date = ? AND status = ?`,
		today, models.Present).Scan(&stats.PresentToday)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM inventory`).Scan(&stats.InventoryItems)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM rent_payments WHERE status = ?`,
		models.RentPending).Scan(&stats.PendingRentPayments)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
