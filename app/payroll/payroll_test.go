package payroll

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/ItsDeveloperChirag/HotelApp/app/database"
	"github.com/ItsDeveloperChirag/HotelApp/app/models"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := database.Init(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func addEmployee(t *testing.T, db *sql.DB, name, nationalID string, wage float64) int64 {
	t.Helper()
	ok, err := database.AddEmployee(db, name, nationalID, "", "", wage)
	if err != nil || !ok {
		t.Fatalf("add employee: ok=%v err=%v", ok, err)
	}
	emps := database.GetEmployees(db)
	return emps[len(emps)-1].ID
}

func markDays(t *testing.T, db *sql.DB, employeeID int64, year, month, fromDay, toDay int, status models.AttendanceStatus) {
	t.Helper()
	for day := fromDay; day <= toDay; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		if ok, err := database.MarkAttendance(db, employeeID, date, status); err != nil || !ok {
			t.Fatalf("mark %s: ok=%v err=%v", date, ok, err)
		}
	}
}

func insertAdvance(t *testing.T, db *sql.DB, employeeID int64, amount float64, date string) {
	t.Helper()
	if _, err := db.Exec(`INSERT INTO salary_advances (employee_id, amount, date) VALUES (?, ?, ?)`,
		employeeID, amount, date); err != nil {
		t.Fatal(err)
	}
}

func TestCalculateNetSalary(t *testing.T) {
	db := newTestDB(t)
	id := addEmployee(t, db, "Ravi", "1111-2222", 500)

	markDays(t, db, id, 2024, 3, 1, 20, models.Present)
	markDays(t, db, id, 2024, 3, 21, 22, models.HalfDay)
	markDays(t, db, id, 2024, 3, 23, 25, models.Absent)

	insertAdvance(t, db, id, 600, "2024-03-05")
	insertAdvance(t, db, id, 400, "2024-03-20")

	summary, err := CalculateNetSalary(db, id, 3, 2024)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}

	if summary.PresentDays != 20 {
		t.Errorf("PresentDays = %d, want 20", summary.PresentDays)
	}
	if summary.HalfDays != 2 {
		t.Errorf("HalfDays = %d, want 2", summary.HalfDays)
	}
	if summary.GrossSalary != 10500 {
		t.Errorf("GrossSalary = %v, want 10500", summary.GrossSalary)
	}
	if summary.TotalAdvance != 1000 {
		t.Errorf("TotalAdvance = %v, want 1000", summary.TotalAdvance)
	}
	if summary.NetSalary != 9500 {
		t.Errorf("NetSalary = %v, want 9500", summary.NetSalary)
	}
}

func TestCalculateNetSalaryNoAttendance(t *testing.T) {
	db := newTestDB(t)
	id := addEmployee(t, db, "Ravi", "1111-2222", 500)

	// Attendance in a different month must not count.
	markDays(t, db, id, 2024, 2, 1, 5, models.Present)

	_, err := CalculateNetSalary(db, id, 3, 2024)
	if !errors.Is(err, ErrNoAttendance) {
		t.Fatalf("expected ErrNoAttendance, got %v", err)
	}
}

// A month of only absences is a valid zero result, not a no-data signal.
func TestCalculateNetSalaryAllAbsent(t *testing.T) {
	db := newTestDB(t)
	id := addEmployee(t, db, "Ravi", "1111-2222", 500)

	markDays(t, db, id, 2024, 3, 1, 5, models.Absent)

	summary, err := CalculateNetSalary(db, id, 3, 2024)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if summary.GrossSalary != 0 || summary.NetSalary != 0 {
		t.Errorf("expected zero salary, got gross=%v net=%v", summary.GrossSalary, summary.NetSalary)
	}
}

// Advances above the earned amount push the net negative; it is not clamped.
func TestCalculateNetSalaryNegativeNet(t *testing.T) {
	db := newTestDB(t)
	id := addEmployee(t, db, "Ravi", "1111-2222", 500)

	markDays(t, db, id, 2024, 3, 1, 2, models.Present)
	insertAdvance(t, db, id, 5000, "2024-03-10")

	summary, err := CalculateNetSalary(db, id, 3, 2024)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if summary.NetSalary != -4000 {
		t.Errorf("NetSalary = %v, want -4000", summary.NetSalary)
	}
}

// The wage is read from the current employee record, so a wage change
// reprices an already-recorded month.
func TestCalculateNetSalaryUsesCurrentWage(t *testing.T) {
	db := newTestDB(t)
	id := addEmployee(t, db, "Ravi", "1111-2222", 500)

	markDays(t, db, id, 2024, 3, 1, 10, models.Present)

	before, err := CalculateNetSalary(db, id, 3, 2024)
	if err != nil {
		t.Fatal(err)
	}
	if before.GrossSalary != 5000 {
		t.Errorf("GrossSalary = %v, want 5000", before.GrossSalary)
	}

	if ok, err := database.UpdateEmployee(db, id, "Ravi", "", "", 600); err != nil || !ok {
		t.Fatalf("update wage: ok=%v err=%v", ok, err)
	}

	after, err := CalculateNetSalary(db, id, 3, 2024)
	if err != nil {
		t.Fatal(err)
	}
	if after.GrossSalary != 6000 {
		t.Errorf("GrossSalary after wage change = %v, want 6000", after.GrossSalary)
	}
}

func TestCalculateNetSalaryScopedToEmployee(t *testing.T) {
	db := newTestDB(t)
	ravi := addEmployee(t, db, "Ravi", "1111-2222", 500)
	meena := addEmployee(t, db, "Meena", "3333-4444", 450)

	markDays(t, db, ravi, 2024, 3, 1, 10, models.Present)
	markDays(t, db, meena, 2024, 3, 1, 31, models.Present)
	insertAdvance(t, db, meena, 2000, "2024-03-10")

	summary, err := CalculateNetSalary(db, ravi, 3, 2024)
	if err != nil {
		t.Fatal(err)
	}
	if summary.PresentDays != 10 {
		t.Errorf("PresentDays = %d, want 10 (other employees must not count)", summary.PresentDays)
	}
	if summary.TotalAdvance != 0 {
		t.Errorf("TotalAdvance = %v, want 0 (other employees' advances must not count)", summary.TotalAdvance)
	}
}
