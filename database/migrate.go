// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"liverooms/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	// Core application models
	if err := db.AutoMigrate(
		&models.User{},
	); err != nil {
		log.Fatalf("❌ Failed to run core migrations: %v", err)
	}

	log.Println("✅ Core migrations completed")

	// Team portal tables
	if err := RunTeamMigrations(db); err != nil {
		log.Fatalf("❌ Failed to run team migrations: %v", err)
	}

	// Room lifecycle tables
	if err := RunRoomMigrations(db); err != nil {
		log.Fatalf("❌ Failed to run room migrations: %v", err)
	}

	// Create indexes for core tables
	createCoreIndexes()

	log.Println("✅ All migrations completed successfully")
}

// createCoreIndexes creates indexes for core tables
func createCoreIndexes() {
	db := GetDB()
	log.Println("Creating core indexes...")

	// User indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_admin ON users(is_admin)")

	log.Println("✅ Core indexes created")
}
