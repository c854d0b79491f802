package database

import (
	"testing"
	"time"

	"github.com/ItsDeveloperChirag/HotelApp/app/models"
)

func TestGetDashboardStats(t *testing.T) {
	db := newTestDB(t)

	if _, err := AddEmployee(db, "Ravi", "1111-2222", "", "", 500); err != nil {
		t.Fatal(err)
	}
	if _, err := AddEmployee(db, "Meena", "3333-4444", "", "", 450); err != nil {
		t.Fatal(err)
	}
	emps := GetEmployees(db)

	today := time.Now().Format("2006-01-02")
	if _, err := MarkAttendance(db, emps[0].ID, today, models.Present); err != nil {
		t.Fatal(err)
	}
	if _, err := MarkAttendance(db, emps[1].ID, today, models.Absent); err != nil {
		t.Fatal(err)
	}

	if _, err := UpsertInventoryItem(db, "Rice", 10, "kg"); err != nil {
		t.Fatal(err)
	}
	if _, err := AddRentPayment(db, today, 15000, models.RentPending); err != nil {
		t.Fatal(err)
	}
	if _, err := AddRentPayment(db, today, 8000, models.RentPaid); err != nil {
		t.Fatal(err)
	}

	stats, err := GetDashboardStats(db)
	if err != nil {
		t.Fatalf("dashboard stats: %v", err)
	}

	if stats.TotalEmployees != 2 {
		t.Errorf("TotalEmployees = %d, want 2", stats.TotalEmployees)
	}
	if stats.PresentToday != 1 {
		t.Errorf("PresentToday = %d, want 1", stats.PresentToday)
	}
	if stats.InventoryItems != 1 {
		t.Errorf("InventoryItems = %d, want 1", stats.InventoryItems)
	}
	if stats.PendingRentPayments != 1 {
		t.Errorf("PendingRentPayments = %d, want 1", stats.PendingRentPayments)
	}
}
