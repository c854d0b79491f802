package models

// Dates are stored as zero-padded YYYY-MM-DD strings so that SQLite's
// lexicographic comparison doubles as date comparison.

// Employee represents a hotel staff member on a daily wage.
type Employee struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	NationalID string  `json:"national_id"`
	Phone      string  `json:"phone"`
	Address    string  `json:"address"`
	JoinDate   string  `json:"join_date"`
	DailyWage  float64 `json:"daily_wage"`
}

// Attendance is one employee's status for one date.
type Attendance struct {
	ID         int64            `json:"id"`
	EmployeeID int64            `json:"employee_id"`
	Date       string           `json:"date"`
	Status     AttendanceStatus `json:"status"`
}

// AttendanceRecord is the joined row returned by range listings.
type AttendanceRecord struct {
	ID           int64            `json:"id"`
	EmployeeName string           `json:"employee_name"`
	Date         string           `json:"date"`
	Status       AttendanceStatus `json:"status"`
}

// SalaryAdvance is money paid out ahead of the monthly settlement.
type SalaryAdvance struct {
	ID         int64   `json:"id"`
	EmployeeID int64   `json:"employee_id"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
}

// InventoryItem is a stock line; identity is the item name, not the id,
// because writes replace by name.
type InventoryItem struct {
	ID          int64   `json:"id"`
	ItemName    string  `json:"item_name"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	LastUpdated string  `json:"last_updated"`
}

// RentPayment is one entry in the rent schedule.
type RentPayment struct {
	ID      int64      `json:"id"`
	DueDate string     `json:"due_date"`
	Amount  float64    `json:"amount"`
	Status  RentStatus `json:"status"`
}

// Admin is the single back-office credential.
type Admin struct {
	Username string `json:"username"`
	Password string `json:"-"`
}

// DashboardStats summarizes the ledger for the landing view.
type DashboardStats struct {
	TotalEmployees      int `json:"total_employees"`
	PresentToday        int `json:"present_today"`
	InventoryItems      int `json:"inventory_items"`
	PendingRentPayments int `json:"pending_rent_payments"`
}
