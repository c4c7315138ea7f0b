// services/team_service.go - Team Portal Business Logic
package services

import (
	"errors"
	"fmt"
	"time"

	"liverooms/models"
	"liverooms/utils"

	"gorm.io/gorm"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

// ================== TEAM CRUD OPERATIONS ==================

// CreateTeam creates a new team with the user as an approved owner.
func (s *TeamService) CreateTeam(name, description string, isPublic bool, creatorID uint) (*models.Team, error) {
	if name == "" {
		return nil, errors.New("team name is required")
	}

	slug, err := s.uniqueSlug(name)
	if err != nil {
		return nil, err
	}

	team := &models.Team{
		Name:        name,
		Slug:        slug,
		Description: description,
		IsPublic:    isPublic,
		CreatorID:   creatorID,
		IsActive:    true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}

		member := &models.TeamMember{
			TeamID:     team.ID,
			UserID:     creatorID,
			Role:       models.TeamRoleOwner,
			JoinedAt:   time.Now(),
			IsActive:   true,
			IsApproved: true,
		}
		if err := tx.Create(member).Error; err != nil {
			return err
		}

		return s.recountApprovedMembers(tx, team.ID)
	})
	if err != nil {
		return nil, err
	}

	team.ApprovedMemberCount = 1
	return team, nil
}

// GetTeamByID retrieves an active team with members preloaded.
func (s *TeamService) GetTeamByID(teamID uint) (*models.Team, error) {
	var team models.Team
	err := s.db.Where("id = ? AND is_active = ?", teamID, true).
		Preload("Members").
		Preload("Members.User").
		First(&team).Error
	if err != nil {
		return nil, errors.New("team not found or inactive")
	}
	return &team, nil
}

// GetTeamBySlug retrieves an active team by its URL slug.
func (s *TeamService) GetTeamBySlug(slug string) (*models.Team, error) {
	var team models.Team
	err := s.db.Where("slug = ? AND is_active = ?", slug, true).
		Preload("Members").
		First(&team).Error
	if err != nil {
		return nil, errors.New("team not found or inactive")
	}
	return &team, nil
}

// GetPublicTeams returns public teams, largest first. The admin room form
// lists these as team-room candidates.
func (s *TeamService) GetPublicTeams(limit int) ([]models.Team, error) {
	var teams []models.Team
	err := s.db.
		Where("is_public = ? AND is_active = ?", true, true).
		Order("approved_member_count DESC").
		Limit(limit).
		Find(&teams).Error
	return teams, err
}

// UpdateTeam updates team information (owner/admin only).
func (s *TeamService) UpdateTeam(teamID uint, name, description string, isPublic bool, updaterID uint) error {
	if !s.IsTeamAdmin(updaterID, teamID) {
		return errors.New("only team owner or admin can update team")
	}

	updates := map[string]interface{}{
		"name":        name,
		"description": description,
		"is_public":   isPublic,
		"updated_at":  time.Now(),
	}
	return s.db.Model(&models.Team{}).Where("id = ?", teamID).Updates(updates).Error
}

// DeleteTeam soft deletes a team (owner only).
func (s *TeamService) DeleteTeam(teamID, ownerID uint) error {
	var member models.TeamMember
	if err := s.db.Where("team_id = ? AND user_id = ?", teamID, ownerID).First(&member).Error; err != nil {
		return errors.New("team not found")
	}
	if member.Role != models.TeamRoleOwner {
		return errors.New("only team owner can delete team")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.TeamMember{}).Where("team_id = ?", teamID).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.Team{}).Where("id = ?", teamID).
			Update("is_active", false).Error
	})
}

// ================== MEMBERSHIP OPERATIONS ==================

// JoinTeam adds a user to a team as a pending member. Only approved
// membership counts toward team-room eligibility, and approval takes a team
// admin.
func (s *TeamService) JoinTeam(userID, teamID uint) error {
	var team models.Team
	if err := s.db.Where("id = ? AND is_active = ?", teamID, true).First(&team).Error; err != nil {
		return errors.New("team not found or inactive")
	}

	if s.IsTeamMember(userID, teamID) {
		return errors.New("already a member of this team")
	}

	member := &models.TeamMember{
		TeamID:     teamID,
		UserID:     userID,
		Role:       models.TeamRoleMember,
		JoinedAt:   time.Now(),
		IsActive:   true,
		IsApproved: false,
	}
	return s.db.Create(member).Error
}

// ApproveMember marks a pending member approved and refreshes the team's
// approved member count (admin/owner only).
func (s *TeamService) ApproveMember(teamID, approverID, memberUserID uint) error {
	if !s.IsTeamAdmin(approverID, teamID) {
		return errors.New("only team admin or owner can approve members")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.TeamMember{}).
			Where("team_id = ? AND user_id = ? AND is_active = ?", teamID, memberUserID, true).
			Update("is_approved", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.New("member not found")
		}
		return s.recountApprovedMembers(tx, teamID)
	})
}

// LeaveTeam removes a user from a team.
func (s *TeamService) LeaveTeam(userID, teamID uint) error {
	var member models.TeamMember
	if err := s.db.Where("team_id = ? AND user_id = ?", teamID, userID).First(&member).Error; err != nil {
		return errors.New("not a member of this team")
	}
	if member.Role == models.TeamRoleOwner {
		return errors.New("team owner must transfer ownership before leaving")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&member).Update("is_active", false).Error; err != nil {
			return err
		}
		return s.recountApprovedMembers(tx, teamID)
	})
}

// RemoveMember removes a member from a team (admin/owner only).
func (s *TeamService) RemoveMember(teamID, adminID, memberUserID uint) error {
	if !s.IsTeamAdmin(adminID, teamID) {
		return errors.New("only team admin or owner can remove members")
	}

	var target models.TeamMember
	if err := s.db.Where("team_id = ? AND user_id = ?", teamID, memberUserID).First(&target).Error; err != nil {
		return errors.New("member not found")
	}
	if target.Role == models.TeamRoleOwner {
		return errors.New("cannot remove team owner")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&target).Update("is_active", false).Error; err != nil {
			return err
		}
		return s.recountApprovedMembers(tx, teamID)
	})
}

// GetTeamMembers returns all active members of a team.
func (s *TeamService) GetTeamMembers(teamID uint) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := s.db.Where("team_id = ? AND is_active = ?", teamID, true).
		Preload("User").
		Order("role ASC, joined_at ASC").
		Find(&members).Error
	return members, err
}

// ================== HELPER FUNCTIONS ==================

// IsTeamMember checks if a user is an active member of a team.
func (s *TeamService) IsTeamMember(userID, teamID uint) bool {
	var count int64
	s.db.Model(&models.TeamMember{}).
		Where("team_id = ? AND user_id = ? AND is_active = ?", teamID, userID, true).
		Count(&count)
	return count > 0
}

// IsTeamAdmin checks if a user is owner or admin of a team.
func (s *TeamService) IsTeamAdmin(userID, teamID uint) bool {
	var member models.TeamMember
	err := s.db.Where("team_id = ? AND user_id = ? AND is_active = ?", teamID, userID, true).
		First(&member).Error
	if err != nil {
		return false
	}
	return member.Role == models.TeamRoleOwner || member.Role == models.TeamRoleAdmin
}

// recountApprovedMembers recomputes the denormalized approved member count
// the room eligibility rule reads.
func (s *TeamService) recountApprovedMembers(tx *gorm.DB, teamID uint) error {
	var count int64
	if err := tx.Model(&models.TeamMember{}).
		Where("team_id = ? AND is_active = ? AND is_approved = ?", teamID, true, true).
		Count(&count).Error; err != nil {
		return err
	}
	return tx.Model(&models.Team{}).Where("id = ?", teamID).
		Update("approved_member_count", count).Error
}

// uniqueSlug derives a slug from the team name, suffixing a counter on
// collision.
func (s *TeamService) uniqueSlug(name string) (string, error) {
	base := utils.Slugify(name)
	if base == "" {
		return "", errors.New("team name must contain letters or numbers")
	}

	slug := base
	for i := 2; ; i++ {
		var count int64
		if err := s.db.Model(&models.Team{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
