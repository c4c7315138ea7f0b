// handlers/admin/rooms.go - Admin Room Management
package admin

import (
	"errors"
	"log"

	"liverooms/middleware"
	"liverooms/models"
	"liverooms/rooms"
	"liverooms/services"
	"liverooms/utils"

	"github.com/gofiber/fiber/v2"
)

var roomService *services.RoomService

// InitRoomHandlers wires the shared room service into the admin package.
func InitRoomHandlers(svc *services.RoomService) {
	roomService = svc
}

type CreateRoomRequest struct {
	TemplateID *string `json:"template_id"`
	rooms.RoomPatch
}

// CreateRoom creates a room, optionally expanded from a template
// POST /api/admin/rooms
func CreateRoom(c *fiber.Ctx) error {
	var req CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	// Derive the key from the name when the form leaves it blank
	if (req.RoomKey == nil || *req.RoomKey == "") && req.Name != nil {
		key := utils.Slugify(*req.Name)
		req.RoomKey = &key
	}

	room, err := roomService.CreateRoom(req.TemplateID, req.RoomPatch, middleware.IsAdmin(c))
	if err != nil {
		return roomErrorResponse(c, err)
	}

	log.Printf("✅ Room created: %s (%s, %s)\n", room.RoomKey, room.RoomType, room.Status)
	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"message": "Room created successfully",
		"room":    room,
	})
}

// ListRooms returns every room regardless of status or visibility
// GET /api/admin/rooms
func ListRooms(c *fiber.Ctx) error {
	list, err := roomService.ListRooms()
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

// GetRoom retrieves a room by ID
// GET /api/admin/rooms/:id
func GetRoom(c *fiber.Ctx) error {
	room, err := roomService.GetRoom(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"error":   "Room not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"room":    room,
	})
}

// UpdateRoom applies a partial edit to a room
// PUT /api/admin/rooms/:id
func UpdateRoom(c *fiber.Ctx) error {
	var patch rooms.RoomPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	room, err := roomService.UpdateRoom(c.Params("id"), patch, middleware.IsAdmin(c))
	if err != nil {
		return roomErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Room updated successfully",
		"room":    room,
	})
}

// TransitionRoom moves a room to a requested status
// POST /api/admin/rooms/:id/transition
func TransitionRoom(c *fiber.Ctx) error {
	var req struct {
		Status models.RoomStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if req.Status == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Status is required",
		})
	}

	room, err := roomService.TransitionRoom(c.Params("id"), req.Status)
	if err != nil {
		return roomErrorResponse(c, err)
	}

	log.Printf("🔄 Room %s moved to %s\n", room.RoomKey, room.Status)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Room status updated",
		"room":    room,
	})
}

// DeleteRoom removes a room
// DELETE /api/admin/rooms/:id
func DeleteRoom(c *fiber.Ctx) error {
	if err := roomService.DeleteRoom(c.Params("id")); err != nil {
		return roomErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Room deleted successfully",
	})
}

// roomErrorResponse maps room rule errors onto HTTP statuses. Field problems
// come back as a per-field map so forms can annotate inputs directly.
func roomErrorResponse(c *fiber.Ctx, err error) error {
	var fieldErrs rooms.FieldErrors
	if errors.As(err, &fieldErrs) {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Validation failed",
			"errors":  fieldErrs,
		})
	}

	var eligErr *rooms.EligibilityError
	if errors.As(err, &eligErr) {
		return c.Status(422).JSON(fiber.Map{
			"success": false,
			"error":   eligErr.Error(),
		})
	}

	var transErr *rooms.TransitionError
	if errors.As(err, &transErr) {
		return c.Status(409).JSON(fiber.Map{
			"success": false,
			"error":   transErr.Error(),
		})
	}

	var confErr *rooms.ConflictError
	if errors.As(err, &confErr) {
		return c.Status(409).JSON(fiber.Map{
			"success": false,
			"error":   confErr.Error(),
		})
	}

	if errors.Is(err, rooms.ErrTeamNotFound) {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"error":   "Team not found",
		})
	}

	if errors.Is(err, services.ErrRoomNotFound) {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"error":   "Room not found",
		})
	}

	if errors.Is(err, services.ErrTemplateNotFound) {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"error":   "Template not found",
		})
	}

	log.Printf("❌ Room operation failed: %v\n", err)
	return c.Status(500).JSON(fiber.Map{
		"success": false,
		"error":   "Internal server error",
	})
}
