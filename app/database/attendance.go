package database

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/ItsDeveloperChirag/HotelApp/app/models"
)

// MarkAttendance records an employee's status for a date. A second mark for
// the same (employee, date) overwrites the earlier status, so the pair holds
// at most one row.
func MarkAttendance(db *sql.DB, employeeID int64, date string, status models.AttendanceStatus) (bool, error) {
	res, err := db.Exec(`UPDATE attendance SET status = ? WHERE employee_id = ? AND date = ?`,
		status, employeeID, date)
	if err != nil {
		return false, fmt.Errorf("failed to mark attendance: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return true, nil
	}

	_, err = db.Exec(`INSERT INTO attendance (employee_id, date, status) VALUES (?, ?, ?)`,
		employeeID, date, status)
	if err != nil {
		return false, fmt.Errorf("failed to mark attendance: %w", err)
	}
	return true, nil
}

// UpdateAttendance changes the status of an existing attendance row.
func UpdateAttendance(db *sql.DB, attendanceID int64, status models.AttendanceStatus) (bool, error) {
	res, err := db.Exec(`UPDATE attendance SET status = ? WHERE id = ?`, status, attendanceID)
	if err != nil {
		return false, fmt.Errorf("failed to update attendance: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to update attendance: %w", err)
	}
	return n > 0, nil
}

func DeleteAttendance(db *sql.DB, attendanceID int64) (bool, error) {
	res, err := db.Exec(`DELETE FROM attendance WHERE id = ?`, attendanceID)
	if err != nil {
		return false, fmt.Errorf("failed to delete attendance: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete attendance: %w", err)
	}
	return n > 0, nil
}

// ListAttendanceBetween returns every attendance row in the inclusive date
// range, joined with the employee name for display. Dates must be
// zero-padded YYYY-MM-DD strings; the comparison is lexicographic.
func ListAttendanceBetween(db *sql.DB, startDate, endDate string) []models.AttendanceRecord {
	rows, err := db.Query(`SELECT a.id, e.name, a.date, a.status
		FROM attendance a
		JOIN employees e ON a.employee_id = e.id
		WHERE a.date BETWEEN ? AND ?`,
		startDate, endDate)
	if err != nil {
		log.Printf("Error fetching attendance: %v", err)
		return []models.AttendanceRecord{}
	}
	defer rows.Close()

	records := []models.AttendanceRecord{}
	for rows.Next() {
		var r models.AttendanceRecord
		if err := rows.Scan(&r.ID, &r.EmployeeName, &r.Date, &r.Status); err != nil {
			log.Printf("Error scanning attendance row: %v", err)
			continue
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		log.Printf("Error iterating attendance: %v", err)
		return []models.AttendanceRecord{}
	}
	return records
}

// ListEmployeeAttendanceBetween returns one employee's rows in the inclusive
// date range. Used by the salary calculation.
func ListEmployeeAttendanceBetween(db *sql.DB, employeeID int64, startDate, endDate string) []models.Attendance {
	rows, err := db.Query(`SELECT id, employee_id, date, status
		FROM attendance
		WHERE employee_id = ? AND date BETWEEN ? AND ?`,
		employeeID, startDate, endDate)
	if err != nil {
		log.Printf("Error fetching attendance for employee %d: %v", employeeID, err)
		return []models.Attendance{}
	}
	defer rows.Close()

	records := []models.Attendance{}
	for rows.Next() {
		var a models.Attendance
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Date, &a.Status); err != nil {
			log.Printf("Error scanning attendance row: %v", err)
			continue
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		log.Printf("Error iterating attendance: %v", err)
		return []models.Attendance{}
	}
	return records
}
