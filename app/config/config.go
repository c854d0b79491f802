package config

import (
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

type Config struct {
	DB        *sql.DB
	DBPath    string
	Port      string
	JWTSecret string
}

var AppConfig *Config

// LoadEnv reads .env if present, otherwise falls back to process env vars.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	AppConfig = &Config{
		DBPath:    GetEnv("DB_PATH", "hotel_management.db"),
		Port:      GetEnv("PORT", "3000"),
		JWTSecret: GetEnv("JWT_SECRET", "hotel-app-secret-key"),
	}
}

func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// InitDB opens the SQLite ledger file and verifies the connection.
func InitDB() {
	if AppConfig == nil {
		LoadEnv()
	}

	db, err := sql.Open("sqlite", AppConfig.DBPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}

	// SQLite serves one writer at a time; a single pooled connection keeps
	// every operation a scoped acquire-work-release cycle.
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		log.Fatal("Database connection failed:", err)
	}

	log.Printf("Connected to database at %s", AppConfig.DBPath)
	AppConfig.DB = db
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
