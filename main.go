package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"liverooms/database"
	"liverooms/handlers"
	"liverooms/handlers/admin"
	"liverooms/middleware"
	"liverooms/rooms"
	"liverooms/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Validate critical environment variables
	validateEnvironment()

	// Initialize database
	database.InitDB()

	// Room rules, tunable per environment
	rules := rooms.Ruleset{
		MinTeamMembers:    getEnvInt("ROOM_TEAM_MIN_MEMBERS", rooms.DefaultMinTeamMembers),
		InterestThreshold: getEnvInt("ROOM_DEFAULT_INTEREST_THRESHOLD", rooms.DefaultInterestThreshold),
	}

	// Initialize services and handlers
	feed := services.NewStatusFeed()
	roomService := services.NewRoomService(database.GetDB(), rules, feed)
	templateService := services.NewTemplateService(database.GetDB())

	handlers.InitTeamHandlers()
	handlers.InitRoomHandlers(roomService)
	handlers.InitLiveHandlers(feed)
	admin.InitRoomHandlers(roomService)
	admin.InitTemplateHandlers(templateService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    4 * 1024 * 1024, // 4MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// Apply rate limiting to all routes
	app.Use(middleware.RateLimitMiddleware())

	// API Routes
	api := app.Group("/api")

	// Auth routes with stricter rate limiting
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.AuthRateLimitMiddleware())
	authGroup.Post("/login", handlers.Login)
	authGroup.Post("/register", handlers.Register)
	authGroup.Get("/me", middleware.AuthMiddleware, handlers.Me)

	// Public room routes. Optional auth lets team members open their
	// team-only rooms through the same endpoint.
	api.Get("/rooms", handlers.ListRooms)
	api.Get("/rooms/options", handlers.GetRoomOptions)
	api.Get("/rooms/:key", middleware.OptionalAuthMiddleware, handlers.GetRoom)
	api.Post("/rooms/:key/interest", middleware.AuthMiddleware, handlers.RegisterInterest)

	// Team Portal routes
	api.Get("/teams/public", handlers.GetPublicTeams)
	api.Get("/teams/slug/:slug", handlers.GetTeamBySlug)

	teamGroup := api.Group("/teams")
	teamGroup.Use(middleware.AuthMiddleware)
	teamGroup.Post("/", handlers.CreateTeam)
	teamGroup.Get("/:id", handlers.GetTeam)
	teamGroup.Put("/:id", handlers.UpdateTeam)
	teamGroup.Delete("/:id", handlers.DeleteTeam)
	teamGroup.Post("/:id/join", handlers.JoinTeam)
	teamGroup.Post("/:id/leave", handlers.LeaveTeam)
	teamGroup.Get("/:id/members", handlers.GetTeamMembers)
	teamGroup.Post("/:id/members/:userId/approve", handlers.ApproveMember)
	teamGroup.Delete("/:id/members/:userId", handlers.RemoveMember)
	teamGroup.Get("/:id/rooms", handlers.GetTeamRooms)

	// Admin routes
	adminGroup := api.Group("/admin")
	adminGroup.Post("/login", admin.Login)
	adminGroup.Post("/logout", admin.Logout)

	// Protected admin routes
	adminProtected := adminGroup.Group("")
	adminProtected.Use(middleware.AdminAuthMiddleware)
	adminProtected.Get("/verify", admin.VerifyToken)

	// Admin room management
	adminProtected.Get("/rooms", admin.ListRooms)
	adminProtected.Post("/rooms", admin.CreateRoom)
	adminProtected.Get("/rooms/:id", admin.GetRoom)
	adminProtected.Put("/rooms/:id", admin.UpdateRoom)
	adminProtected.Post("/rooms/:id/transition", admin.TransitionRoom)
	adminProtected.Delete("/rooms/:id", admin.DeleteRoom)

	// Admin template management
	adminProtected.Get("/templates", admin.ListTemplates)
	adminProtected.Post("/templates", admin.CreateTemplate)
	adminProtected.Get("/templates/:id", admin.GetTemplate)
	adminProtected.Put("/templates/:id", admin.UpdateTemplate)
	adminProtected.Delete("/templates/:id", admin.DeleteTemplate)

	// WebSocket room status stream
	app.Use("/ws", handlers.WebSocketUpgrade)
	app.Get("/ws/rooms/:key", websocket.New(handlers.RoomStatusStream))

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🚀 HTTP server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("🔐 JWT Secret configured: %v", os.Getenv("JWT_SECRET") != "")
	log.Printf("🏟️ Team eligibility floor: %d approved members", rules.MinTeamMembers)
	log.Printf("🌐 Room status stream available at ws://localhost:%s/ws/rooms/:key", port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "production" {
		// Additional production checks
		corsOrigins := os.Getenv("CORS_ORIGINS")
		if corsOrigins == "" || corsOrigins == "http://localhost:3000" {
			log.Println("WARNING: CORS_ORIGINS not properly configured for production")
		}
	}
}

// Helper functions

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return defaultVal
}
