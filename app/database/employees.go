package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/ItsDeveloperChirag/HotelApp/app/models"
)

// AddEmployee inserts a new employee with today's date as join date.
// Returns false when the national id is already registered.
func AddEmployee(db *sql.DB, name, nationalID, phone, address string, wage float64) (bool, error) {
	_, err := db.Exec(`INSERT INTO employees (name, national_id, phone, address, join_date, daily_wage)
		VALUES (?, ?, ?, ?, ?, ?)`,
		name, nationalID, phone, address, time.Now().Format("2006-01-02"), wage)
	if err != nil {
		if isUniqueViolation(err) {
			log.Printf("Duplicate national id attempted: %s", nationalID)
			return false, nil
		}
		return false, fmt.Errorf("failed to add employee: %w", err)
	}
	return true, nil
}

// UpdateEmployee rewrites the mutable fields of an employee.
// The national id and join date are fixed at creation.
func UpdateEmployee(db *sql.DB, id int64, name, phone, address string, wage float64) (bool, error) {
	res, err := db.Exec(`UPDATE employees SET name = ?, phone = ?, address = ?, daily_wage = ?
		WHERE id = ?`,
		name, phone, address, wage, id)
	if err != nil {
		return false, fmt.Errorf("failed to update employee: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to update employee: %w", err)
	}
	return n > 0, nil
}

// DeleteEmployee removes the employee row only. Attendance and advance rows
// referencing the employee are left in place.
func DeleteEmployee(db *sql.DB, id int64) (bool, error) {
	res, err := db.Exec(`DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete employee: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete employee: %w", err)
	}
	return n > 0, nil
}

// GetEmployees returns all employees in storage order. On query failure it
// logs and returns an empty slice so callers always get a renderable table.
func GetEmployees(db *sql.DB) []models.Employee {
	rows, err := db.Query(`SELECT id, name, national_id, phone, address, join_date, daily_wage
		FROM employees`)
	if err != nil {
		log.Printf("Error fetching employees: %v", err)
		return []models.Employee{}
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.NationalID, &e.Phone, &e.Address, &e.JoinDate, &e.DailyWage); err != nil {
			log.Printf("Error scanning employee row: %v", err)
			continue
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		log.Printf("Error iterating employees: %v", err)
		return []models.Employee{}
	}
	return employees
}

// GetEmployeeByID returns nil when the employee does not exist.
func GetEmployeeByID(db *sql.DB, id int64) (*models.Employee, error) {
	var e models.Employee
	err := db.QueryRow(`SELECT id, name, national_id, phone, address, join_date, daily_wage
		FROM employees WHERE id = ?`, id).
		Scan(&e.ID, &e.Name, &e.NationalID, &e.Phone, &e.Address, &e.JoinDate, &e.DailyWage)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employee %d: %w", id, err)
	}
	return &e, nil
}
