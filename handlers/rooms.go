// handlers/rooms.go - Public Room Surface
package handlers

import (
	"errors"
	"log"

	"liverooms/middleware"
	"liverooms/models"
	"liverooms/rooms"
	"liverooms/services"

	"github.com/gofiber/fiber/v2"
)

var roomService *services.RoomService

// InitRoomHandlers wires the shared room service into this package.
func InitRoomHandlers(svc *services.RoomService) {
	roomService = svc
}

// ListRooms returns the publicly listed rooms
// GET /api/rooms
func ListRooms(c *fiber.Ctx) error {
	if roomService == nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Room service not initialized",
		})
	}

	list, err := roomService.ListVisibleRooms()
	if err != nil {
		log.Printf("❌ Failed to list rooms: %v\n", err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to retrieve rooms",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"rooms":   list,
		"count":   len(list),
	})
}

// GetRoom retrieves a room by its key
// GET /api/rooms/:key
func GetRoom(c *fiber.Ctx) error {
	room, err := roomService.GetRoomByKey(c.Params("key"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"error":   "Room not found",
		})
	}

	// Team-only rooms are not served on the public surface
	if room.Visibility == models.VisibilityTeamOnly && !middleware.IsAdmin(c) {
		userID, err := middleware.GetUserID(c)
		if err != nil || room.TeamID == nil {
			return c.Status(404).JSON(fiber.Map{
				"success": false,
				"error":   "Room not found",
			})
		}
		if !teamService.IsTeamMember(userID, *room.TeamID) {
			return c.Status(404).JSON(fiber.Map{
				"success": false,
				"error":   "Room not found",
			})
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"room":    room,
	})
}

// RegisterInterest records one interest signal for a room. Only signed-in
// users count toward the threshold.
// POST /api/rooms/:key/interest
func RegisterInterest(c *fiber.Ctx) error {
	if _, err := middleware.GetUserID(c); err != nil {
		return c.Status(401).JSON(fiber.Map{
			"success": false,
			"error":   "Authentication required",
		})
	}

	room, err := roomService.RegisterInterest(c.Params("key"))
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			return c.Status(404).JSON(fiber.Map{
				"success": false,
				"error":   "Room not found",
			})
		}
		log.Printf("❌ Interest registration failed for %s: %v\n", c.Params("key"), err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to register interest",
		})
	}

	return c.JSON(fiber.Map{
		"success":                true,
		"status":                 room.Status,
		"current_interest_count": room.CurrentInterestCount,
		"interest_threshold":     room.InterestThreshold,
	})
}

// GetRoomOptions returns the option lists the room form renders
// GET /api/rooms/options
func GetRoomOptions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":    true,
		"categories": models.Categories,
		"gradients":  models.Gradients,
		"layouts": []models.LayoutType{
			models.LayoutGrid, models.LayoutVersus, models.LayoutPanel,
		},
		"defaults": fiber.Map{
			"max_participants":   rooms.DefaultMaxParticipants,
			"interest_threshold": roomService.Rules().InterestThreshold,
		},
	})
}

// GetTeamRooms lists the rooms attached to a team the caller belongs to
// GET /api/teams/:id/rooms
func GetTeamRooms(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	teamID, err := c.ParamsInt("id")
	if err != nil || teamID <= 0 {
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

	list, err := roomService.ListTeamRooms(uint(teamID))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to retrieve rooms",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"rooms":   list,
		"count":   len(list),
	})
}
