// Resets the back-office admin credential to the seeded default, or to a
// password given on the command line. Useful after a forgotten password.
package main

import (
	"flag"
	"log"

	"github.com/ItsDeveloperChirag/HotelApp/app/config"
	"github.com/ItsDeveloperChirag/HotelApp/app/database"
)

func main() {
	password := flag.String("password", database.DefaultAdminPassword, "new admin password")
	flag.Parse()

	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.Init(db); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	ok, err := database.ChangeAdminPassword(db, database.DefaultAdminUsername, *password)
	if err != nil {
		log.Fatal("Failed to reset admin password:", err)
	}
	if !ok {
		log.Fatal("Admin account not found")
	}

	log.Printf("Password reset for %q", database.DefaultAdminUsername)
}
