package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/usama228/AMS-Backend/config"
	_ "github.com/usama228/AMS-Backend/docs"
	"github.com/usama228/AMS-Backend/repository"
	"github.com/usama228/AMS-Backend/router"
	"github.com/usama228/AMS-Backend/seeder"
	_ "time/tzdata"
)

// @title AMS Backend API
// @version 1.0
// @description Attendance management backend with user administration, daily check-in/out and leave request workflows
//
// @contact.name API Support
//
// @host localhost:5000
// @BasePath /api
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
//
// @tag.name Auth
// @tag.description Authentication endpoints
//
// @tag.name Users
// @tag.description User management endpoints
//
// @tag.name Attendance
// @tag.description Attendance ledger endpoints
//
// @tag.name Leave
// @tag.description Leave request endpoints
//
// @tag.name Images
// @tag.description Asset upload endpoints
func main() {
	cfg := config.LoadConfig()

	config.MongoConnect()
	config.InitDatabase()
	defer config.DisconnectDB()

	if os.Getenv("SEED_ADMIN") == "true" {
		seeder.SeedAdminUser(repository.NewUserRepository())
	}

	app := fiber.New()

	config.SetupCORS(app)
	app.Use(logger.New())

	router.SetupRoutes(app, cfg)

	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/docs/index.html", cfg.Port)
	log.Printf("CORS enabled for origins: %v", config.GetAllowedOrigins())
	log.Fatal(app.Listen(":" + cfg.Port))
}
