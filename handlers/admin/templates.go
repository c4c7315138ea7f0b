// handlers/admin/templates.go - Room Template Management
package admin

import (
	"liverooms/models"
	"liverooms/services"

	"github.com/gofiber/fiber/v2"
)

var templateService *services.TemplateService

// InitTemplateHandlers wires the shared template service into the admin package.
func InitTemplateHandlers(svc *services.TemplateService) {
	templateService = svc
}

// CreateTemplate stores a new room template
// POST /api/admin/templates
func CreateTemplate(c *fiber.Ctx) error {
	var tpl models.RoomTemplate
	if err := c.BodyParser(&tpl); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	created, err := templateService.CreateTemplate(&tpl)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"success":  true,
		"message":  "Template created successfully",
		"template": created,
	})
}

// ListTemplates returns the active templates
// GET /api/admin/templates
func ListTemplates(c *fiber.Ctx) error {
	list, err := templateService.ListTemplates()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to retrieve templates",
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"templates": list,
		"count":     len(list),
	})
}

// GetTemplate retrieves a template by ID
// GET /api/admin/templates/:id
func GetTemplate(c *fiber.Ctx) error {
	tpl, err := templateService.GetTemplate(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"error":   "Template not found",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"template": tpl,
	})
}

// UpdateTemplate replaces a template's defaults
// PUT /api/admin/templates/:id
func UpdateTemplate(c *fiber.Ctx) error {
	var tpl models.RoomTemplate
	if err := c.BodyParser(&tpl); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	updated, err := templateService.UpdateTemplate(c.Params("id"), &tpl)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"error":   "Template not found",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"message":  "Template updated successfully",
		"template": updated,
	})
}

// DeleteTemplate retires a template
// DELETE /api/admin/templates/:id
func DeleteTemplate(c *fiber.Ctx) error {
	if err := templateService.DeleteTemplate(c.Params("id")); err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"error":   "Template not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Template deleted successfully",
	})
}
