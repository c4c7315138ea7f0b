// database/room_migrations.go - Room Lifecycle Database Migrations
package database

import (
	"log"

	"liverooms/models"

	"gorm.io/gorm"
)

// RunRoomMigrations creates the room and template tables
func RunRoomMigrations(db *gorm.DB) error {
	log.Println("Running Room migrations...")

	if err := db.AutoMigrate(
		&models.Room{},
		&models.RoomTemplate{},
	); err != nil {
		return err
	}

	if err := createRoomIndexes(db); err != nil {
		return err
	}

	log.Println("✅ Room migrations completed successfully")
	return nil
}

// createRoomIndexes creates database indexes for room tables
func createRoomIndexes(db *gorm.DB) error {
	log.Println("Creating Room indexes...")

	// Room indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_rooms_key ON rooms(room_key)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_rooms_status ON rooms(status)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_rooms_type ON rooms(room_type)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_rooms_visibility ON rooms(visibility)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_rooms_team ON rooms(team_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_rooms_category ON rooms(category)")

	// Template indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_room_templates_active ON room_templates(is_active)")

	log.Println("✅ Room indexes created successfully")
	return nil
}
