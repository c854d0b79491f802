package database

import (
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/ItsDeveloperChirag/HotelApp/app/models"
)

// AddAdvance records a salary advance dated today. No cap is applied
// relative to salary owed.
func AddAdvance(db *sql.DB, employeeID int64, amount float64) (bool, error) {
	_, err := db.Exec(`INSERT INTO salary_advances (employee_id, amount, date) VALUES (?, ?, ?)`,
		employeeID, amount, time.Now().Format("2006-01-02"))
	if err != nil {
		return false, fmt.Errorf("failed to add salary advance: %w", err)
	}
	return true, nil
}

func UpdateAdvance(db *sql.DB, advanceID int64, amount float64) (bool, error) {
	res, err := db.Exec(`UPDATE salary_advances SET amount = ? WHERE id = ?`, amount, advanceID)
	if err != nil {
		return false, fmt.Errorf("failed to update salary advance: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to update salary advance: %w", err)
	}
	return n > 0, nil
}

func DeleteAdvance(db *sql.DB, advanceID int64) (bool, error) {
	res, err := db.Exec(`DELETE FROM salary_advances WHERE id = ?`, advanceID)
	if err != nil {
		return false, fmt.Errorf("failed to delete salary advance: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete salary advance: %w", err)
	}
	return n > 0, nil
}

// GetAdvances returns the advances paid to an employee in the given calendar
// month, matched on the month and year components of the stored date.
func GetAdvances(db *sql.DB, employeeID int64, month, year int) []models.SalaryAdvance {
	rows, err := db.Query(`SELECT id, employee_id, amount, date
		FROM salary_advances
		WHERE employee_id = ?
		AND strftime('%m', date) = ? AND strftime('%Y', date) = ?`,
		employeeID, fmt.Sprintf("%02d", month), strconv.Itoa(year))
	if err != nil {
		log.Printf("Error fetching salary advances: %v", err)
		return []models.SalaryAdvance{}
	}
	defer rows.Close()

	advances := []models.SalaryAdvance{}
	for rows.Next() {
		var a models.SalaryAdvance
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Amount, &a.Date); err != nil {
			log.Printf("Error scanning advance row: %v", err)
			continue
		}
		advances = append(advances, a)
	}
	if err := rows.Err(); err != nil {
		log.Printf("Error iterating advances: %v", err)
		return []models.SalaryAdvance{}
	}
	return advances
}
