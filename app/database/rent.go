package database

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/ItsDeveloperChirag/HotelApp/app/models"
)

// AddRentPayment adds a rent schedule entry. Due dates are not unique; the
// same date may carry several entries.
func AddRentPayment(db *sql.DB, dueDate string, amount float64, status models.RentStatus) (bool, error) {
	_, err := db.Exec(`INSERT INTO rent_payments (due_date, amount, status) VALUES (?, ?, ?)`,
		dueDate, amount, status)
	if err != nil {
		return false, fmt.Errorf("failed to add rent payment: %w", err)
	}
	return true, nil
}

func UpdateRentPayment(db *sql.DB, paymentID int64, amount float64, status models.RentStatus) (bool, error) {
	res, err := db.Exec(`UPDATE rent_payments SET amount = ?, status = ? WHERE id = ?`,
		amount, status, paymentID)
	if err != nil {
		return false, fmt.Errorf("failed to update rent payment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to update rent payment: %w", err)
	}
	return n > 0, nil
}

func DeleteRentPayment(db *sql.DB, paymentID int64) (bool, error) {
	res, err := db.Exec(`DELETE FROM rent_payments WHERE id = ?`, paymentID)
	if err != nil {
		return false, fmt.Errorf("failed to delete rent payment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete rent payment: %w", err)
	}
	return n > 0, nil
}

// GetRentPayments returns the full rent schedule in storage order.
func GetRentPayments(db *sql.DB) []models.RentPayment {
	rows, err := db.Query(`SELECT id, due_date, amount, status FROM rent_payments`)
	if err != nil {
		log.Printf("Error fetching rent payments: %v", err)
		return []models.RentPayment{}
	}
	defer rows.Close()

	payments := []models.RentPayment{}
	for rows.Next() {
		var p models.RentPayment
		if err := rows.Scan(&p.ID, &p.DueDate, &p.Amount, &p.Status); err != nil {
			log.Printf("Error scanning rent payment row: %v", err)
			continue
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		log.Printf("Error iterating rent payments: %v", err)
		return []models.RentPayment{}
	}
	return payments
}
