// Package payroll derives an employee's net salary for a calendar month
// from attendance and salary-advance records.
package payroll

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/ItsDeveloperChirag/HotelApp/app/database"
	"github.com/ItsDeveloperChirag/HotelApp/app/models"
)

// ErrNoAttendance signals that the employee has no attendance rows in the
// target month. Callers must treat this differently from a zero salary.
var ErrNoAttendance = errors.New("no attendance records for the selected period")

// SalarySummary is the payout breakdown for one employee and month.
type SalarySummary struct {
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Month        int     `json:"month"`
	Year         int     `json:"year"`
	PresentDays  int     `json:"present_days"`
	HalfDays     int     `json:"half_days"`
	GrossSalary  float64 `json:"gross_salary"`
	TotalAdvance float64 `json:"total_advance"`
	NetSalary    float64 `json:"net_salary"`
}

// CalculateNetSalary computes the month's payout for one employee:
// gross = (present days + 0.5 * half days) * current daily wage, net =
// gross minus the month's advances. The wage is read from the employee's
// current record, so a wage change reprices past months.
func CalculateNetSalary(db *sql.DB, employeeID int64, month, year int) (*SalarySummary, error) {
	// The day-31 cutoff is safe for stored ISO dates: no row like
	// 2024-02-31 can exist, and the comparison stays inside the month.
	startDate := fmt.Sprintf("%04d-%02d-01", year, month)
	endDate := fmt.Sprintf("%04d-%02d-31", year, month)

	records := database.ListEmployeeAttendanceBetween(db, employeeID, startDate, endDate)
	if len(records) == 0 {
		return nil, ErrNoAttendance
	}

	employee, err := database.GetEmployeeByID(db, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, fmt.Errorf("employee %d not found", employeeID)
	}

	presentDays, halfDays := 0, 0
	for _, r := range records {
		switch r.Status {
		case models.Present:
			presentDays++
		case models.HalfDay:
			halfDays++
		}
	}

	gross := (float64(presentDays) + 0.5*float64(halfDays)) * employee.DailyWage

	totalAdvance := 0.0
	for _, a := range database.GetAdvances(db, employeeID, month, year) {
		totalAdvance += a.Amount
	}

	return &SalarySummary{
		EmployeeID:   employeeID,
		EmployeeName: employee.Name,
		Month:        month,
		Year:         year,
		PresentDays:  presentDays,
		HalfDays:     halfDays,
		GrossSalary:  gross,
		TotalAdvance: totalAdvance,
		NetSalary:    gross - totalAdvance,
	}, nil
}
