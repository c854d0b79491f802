package database

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// newTestDB returns an initialized in-memory ledger. A single pooled
// connection keeps every statement on the same memory database.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := Init(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func TestInitIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	if err := Init(db); err != nil {
		t.Fatalf("second init failed: %v", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM admin`).Scan(&count); err != nil {
		t.Fatalf("count admin rows: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 admin row after re-init, got %d", count)
	}
}

func TestInitDoesNotOverwriteChangedPassword(t *testing.T) {
	db := newTestDB(t)

	if _, err := ChangeAdminPassword(db, DefaultAdminUsername, "newpass"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if err := Init(db); err != nil {
		t.Fatalf("re-init: %v", err)
	}

	ok, err := VerifyAdmin(db, DefaultAdminUsername, "newpass")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Error("re-init overwrote the changed password")
	}
}

func TestVerifyAdmin(t *testing.T) {
	db := newTestDB(t)

	cases := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"seeded pair", DefaultAdminUsername, DefaultAdminPassword, true},
		{"wrong password", DefaultAdminUsername, "wrong", false},
		{"unknown user", "root", DefaultAdminPassword, false},
		{"case-different username", "Admin", DefaultAdminPassword, false},
		{"empty pair", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := VerifyAdmin(db, tc.username, tc.password)
			if err != nil {
				t.Fatalf("verify: %v", err)
			}
			if got != tc.want {
				t.Errorf("VerifyAdmin(%q, %q) = %v, want %v", tc.username, tc.password, got, tc.want)
			}
		})
	}
}

func TestChangeAdminPassword(t *testing.T) {
	db := newTestDB(t)

	ok, err := ChangeAdminPassword(db, DefaultAdminUsername, "changed123")
	if err != nil {
		t.Fatalf("change password: %v", err)
	}
	if !ok {
		t.Fatal("expected password change to succeed")
	}

	if ok, _ := VerifyAdmin(db, DefaultAdminUsername, DefaultAdminPassword); ok {
		t.Error("old password still verifies")
	}
	if ok, _ := VerifyAdmin(db, DefaultAdminUsername, "changed123"); !ok {
		t.Error("new password does not verify")
	}

	ok, err = ChangeAdminPassword(db, "nobody", "irrelevant")
	if err != nil {
		t.Fatalf("change password for unknown user: %v", err)
	}
	if ok {
		t.Error("expected false for unknown username")
	}
}
