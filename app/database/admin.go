package database

import (
	"database/sql"
	"fmt"
)

// VerifyAdmin checks the credential by exact match. The comparison is
// plaintext for parity with existing ledger files; hashing would break them.
func VerifyAdmin(db *sql.DB, username, password string) (bool, error) {
	var u string
	err := db.QueryRow(`SELECT username FROM admin WHERE username = ? AND password = ?`,
		username, password).Scan(&u)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to verify admin: %w", err)
	}
	return true, nil
}

// ChangeAdminPassword sets a new password for the given username.
// Returns false when the username does not exist.
func ChangeAdminPassword(db *sql.DB, username, newPassword string) (bool, error) {
	res, err := db.Exec(`UPDATE admin SET password = ? WHERE username = ?`, newPassword, username)
	if err != nil {
		return false, fmt.Errorf("failed to change admin password: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to change admin password: %w", err)
	}
	return n > 0, nil
}
