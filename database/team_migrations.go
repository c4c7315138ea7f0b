// database/team_migrations.go - Team Portal Database Migrations
package database

import (
	"log"

	"liverooms/models"

	"gorm.io/gorm"
)

// RunTeamMigrations creates all team portal tables
func RunTeamMigrations(db *gorm.DB) error {
	log.Println("Running Team Portal migrations...")

	if err := db.AutoMigrate(
		&models.Team{},
		&models.TeamMember{},
	); err != nil {
		return err
	}

	if err := createTeamIndexes(db); err != nil {
		return err
	}

	log.Println("✅ Team Portal migrations completed successfully")
	return nil
}

// createTeamIndexes creates database indexes for team tables
func createTeamIndexes(db *gorm.DB) error {
	log.Println("Creating Team Portal indexes...")

	// Team indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_teams_creator ON teams(creator_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_teams_slug ON teams(slug)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_teams_public ON teams(is_public)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_teams_active ON teams(is_active)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_teams_approved_count ON teams(approved_member_count DESC)")

	// Team member indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_team_members_team ON team_members(team_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_team_members_user ON team_members(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_team_members_active ON team_members(is_active)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_team_members_approved ON team_members(is_approved)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_team_members_role ON team_members(role)")

	log.Println("✅ Team Portal indexes created successfully")
	return nil
}
