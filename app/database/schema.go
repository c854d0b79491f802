package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Default credential seeded on first initialization.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// Init creates the ledger tables if they are absent and seeds the default
// admin credential. Safe to call on every process start.
//
// Foreign keys are declarative only: SQLite leaves enforcement off unless
// the pragma is set, and employee deletes must not cascade into attendance
// or advance rows.
func Init(db *sql.DB) error {
	log.Println("Initializing database schema...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS admin (
			username TEXT PRIMARY KEY,
			password TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS employees (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			national_id TEXT UNIQUE,
			phone TEXT,
			address TEXT,
			join_date TEXT,
			daily_wage REAL NOT NULL DEFAULT 0 CHECK (daily_wage >= 0)
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			employee_id INTEGER NOT NULL,
			date TEXT NOT NULL,
			status TEXT NOT NULL,
			FOREIGN KEY (employee_id) REFERENCES employees(id)
		)`,
		`CREATE TABLE IF NOT EXISTS salary_advances (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			employee_id INTEGER NOT NULL,
			amount REAL NOT NULL CHECK (amount >= 0),
			date TEXT NOT NULL,
			FOREIGN KEY (employee_id) REFERENCES employees(id)
		)`,
		`CREATE TABLE IF NOT EXISTS inventory (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			item_name TEXT NOT NULL UNIQUE,
			quantity REAL NOT NULL CHECK (quantity >= 0),
			unit TEXT,
			last_updated TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS rent_payments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			due_date TEXT NOT NULL,
			amount REAL NOT NULL CHECK (amount >= 0),
			status TEXT NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	_, err := db.Exec(`INSERT OR IGNORE INTO admin (username, password) VALUES (?, ?)`,
		DefaultAdminUsername, DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to seed admin credential: %w", err)
	}

	log.Println("Database schema ready")
	return nil
}
