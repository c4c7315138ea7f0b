// handlers/teams.go - Team Portal HTTP Handlers
package handlers

import (
	"log"
	"strconv"

	"liverooms/database"
	"liverooms/middleware"
	"liverooms/services"

	"github.com/gofiber/fiber/v2"
)

var teamService *services.TeamService

// InitTeamHandlers initializes the team service
func InitTeamHandlers() {
	db := database.GetDB()
	if db == nil {
		panic("Database not initialized before InitTeamHandlers")
	}
	teamService = services.NewTeamService(db)
}

// ================== TEAM CRUD ENDPOINTS ==================

// CreateTeam creates a new team
// POST /api/teams
func CreateTeam(c *fiber.Ctx) error {
	log.Println("📝 CreateTeam endpoint called")

	if teamService == nil {
		log.Println("❌ Team service is nil!")
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Team service not initialized",
		})
	}

	userID, err := middleware.GetUserID(c)
	if err != nil {
		log.Println("❌ No userId in context - authentication failed")
		return c.Status(401).JSON(fiber.Map{
			"success": false,
			"error":   "Unauthorized - no user ID",
		})
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		IsPublic    bool   `json:"is_public"`
	}

	if err := c.BodyParser(&req); err != nil {
		log.Printf("❌ Body parse error: %v\n", err)
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Team name is required",
		})
	}

	team, err := teamService.CreateTeam(req.Name, req.Description, req.IsPublic, userID)
	if err != nil {
		log.Printf("❌ Team creation failed: %v\n", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	log.Printf("✅ Team created: ID=%d, Slug=%s\n", team.ID, team.Slug)
	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"message": "Team created successfully",
		"team":    team,
	})
}

// GetTeam retrieves a team by ID
// GET /api/teams/:id
func GetTeam(c *fiber.Ctx) error {
	teamID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid team ID",
		})
	}

	team, err := teamService.GetTeamByID(uint(teamID))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"error":   "Team not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"team":    team,
	})
}

// GetTeamBySlug retrieves a team by its URL slug
// GET /api/teams/slug/:slug
func GetTeamBySlug(c *fiber.Ctx) error {
	team, err := teamService.GetTeamBySlug(c.Params("slug"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"error":   "Team not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"team":    team,
	})
}

// GetPublicTeams lists public teams, largest first
// GET /api/teams
func GetPublicTeams(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	teams, err := teamService.GetPublicTeams(limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to retrieve teams",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"teams":   teams,
		"count":   len(teams),
	})
}

// UpdateTeam updates team information
// PUT /api/teams/:id
func UpdateTeam(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	teamID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid team ID",
		})
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		IsPublic    bool   `json:"is_public"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	err = teamService.UpdateTeam(uint(teamID), req.Name, req.Description, req.IsPublic, userID)
	if err != nil {
		return c.Status(403).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Team updated successfully",
	})
}

// DeleteTeam deletes a team
// DELETE /api/teams/:id
func DeleteTeam(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	teamID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid team ID",
		})
	}

	err = teamService.DeleteTeam(uint(teamID), userID)
	if err != nil {
		return c.Status(403).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Team deleted successfully",
	})
}

// ================== TEAM MEMBERSHIP ENDPOINTS ==================

// JoinTeam adds the caller to a team as a pending member
// POST /api/teams/:id/join
func JoinTeam(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	teamID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid team ID",
		})
	}

	if err := teamService.JoinTeam(userID, uint(teamID)); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Join request submitted. A team admin must approve your membership.",
	})
}

// ApproveMember approves a pending team member
// POST /api/teams/:id/members/:userId/approve
func ApproveMember(c *fiber.Ctx) error {
	approverID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	teamID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid team ID",
		})
	}

	memberID, err := strconv.ParseUint(c.Params("userId"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid member ID",
		})
	}

	if err := teamService.ApproveMember(uint(teamID), approverID, uint(memberID)); err != nil {
		return c.Status(403).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Member approved",
	})
}

// LeaveTeam removes the caller from a team
// POST /api/teams/:id/leave
func LeaveTeam(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	teamID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid team ID",
		})
	}

	if err := teamService.LeaveTeam(userID, uint(teamID)); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Left team successfully",
	})
}

// RemoveMember removes a member from a team
// DELETE /api/teams/:id/members/:userId
func RemoveMember(c *fiber.Ctx) error {
	adminID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	teamID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid team ID",
		})
	}

	memberID, err := strconv.ParseUint(c.Params("userId"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid member ID",
		})
	}

	if err := teamService.RemoveMember(uint(teamID), adminID, uint(memberID)); err != nil {
		return c.Status(403).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Member removed",
	})
}

// GetTeamMembers lists the active members of a team
// GET /api/teams/:id/members
func GetTeamMembers(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	teamID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid team ID",
		})
	}

	if !teamService.IsTeamMember(userID, uint(teamID)) && !middleware.IsAdmin(c) {
		return c.Status(403).JSON(fiber.Map{
			"success": false,
			"error":   "Not a member of this team",
		})
	}

	members, err := teamService.GetTeamMembers(uint(teamID))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to retrieve members",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"members": members,
		"count":   len(members),
	})
}
