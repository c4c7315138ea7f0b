// handlers/admin/auth.go - Admin Console Authentication
package admin

import (
	"time"

	"liverooms/database"
	"liverooms/middleware"
	"liverooms/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// adminTokenTTL keeps console sessions short; operators re-login daily.
const adminTokenTTL = 24 * time.Hour

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates an operator for the room management console. The
// account must carry the admin flag; the token's is_admin claim is derived
// from the record, never from the request.
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Username and password are required",
		})
	}

	db := database.GetDB()
	var user models.User
	if err := db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		return c.Status(401).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid credentials",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(401).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid credentials",
		})
	}

	// Same failure shape as a wrong password, so probing for admin accounts
	// learns nothing.
	if !user.IsAdmin || user.IsBanned {
		return c.Status(401).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid credentials",
		})
	}

	db.Model(&user).Update("last_login", time.Now())

	token, expiresAt, err := middleware.IssueToken(&user, adminTokenTTL)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"token":      token,
		"username":   user.Username,
		"expires_at": expiresAt,
	})
}

// VerifyToken confirms the console's stored token is still valid. The admin
// middleware has already rejected anything expired or unprivileged.
func VerifyToken(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":  true,
		"valid":    true,
		"user_id":  c.Locals("userId"),
		"username": c.Locals("username"),
	})
}

// Logout exists for the console's sake; tokens are stateless so the client
// just discards its copy.
func Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}
