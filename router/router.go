package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"github.com/usama228/AMS-Backend/config"
	"github.com/usama228/AMS-Backend/config/middleware"
	_ "github.com/usama228/AMS-Backend/docs"
	"github.com/usama228/AMS-Backend/handlers"
	"github.com/usama228/AMS-Backend/pkg/mailer"
	"github.com/usama228/AMS-Backend/pkg/token"
	"github.com/usama228/AMS-Backend/repository"
)

func SetupRoutes(app *fiber.App, cfg *config.AppConfig) {
	// Repositories
	userRepo := repository.NewUserRepository()
	attendanceRepo := repository.NewAttendanceRepository()
	leaveRepo := repository.NewLeaveRepository()
	avatarRepo := repository.NewAvatarRepository()

	tokenMaker := token.NewMaker(cfg)
	mail := mailer.NewMailer(cfg)

	// Handlers
	authHandler := handlers.NewAuthHandler(userRepo, tokenMaker)
	userHandler := handlers.NewUserHandler(userRepo, mail)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceRepo, userRepo)
	leaveHandler := handlers.NewLeaveHandler(leaveRepo, userRepo)
	avatarHandler := handlers.NewAvatarHandler(avatarRepo, cfg)

	// Health check & Docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AMS Backend API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)
	app.Static("/public", "./public")

	api := app.Group("/api")

	// User & auth routes
	userGroup := api.Group("/users")
	userGroup.Post("/login", authHandler.Login)
	userGroup.Post("/logout", authHandler.Logout)
	userGroup.Post("/register", authHandler.Register)
	userGroup.Post("/user", userHandler.CreateUser)
	userGroup.Get("/user", middleware.ExtractUserID(tokenMaker), userHandler.GetAllUsers)
	userGroup.Get("/user/:id", userHandler.GetUserByID)
	userGroup.Get("/teamUsers/:teamLeadId", userHandler.GetUsersByTeamLead)
	userGroup.Put("/user", userHandler.UpdateUser)
	userGroup.Delete("/user/:id", userHandler.DeleteUser)

	// Attendance routes
	attendanceGroup := api.Group("/attendance")
	attendanceGroup.Post("/", middleware.AdminOrTeamLead(tokenMaker), attendanceHandler.CheckIn)
	attendanceGroup.Put("/", middleware.ExtractUserID(tokenMaker), attendanceHandler.EditAttendance)
	attendanceGroup.Put("/admin", middleware.Authenticated(tokenMaker, userRepo), attendanceHandler.EditCheckInOutByAdmin)
	attendanceGroup.Get("/", attendanceHandler.GetAllCheckedInEmployees)
	attendanceGroup.Get("/user/:userId", attendanceHandler.GetUserAttendance)
	attendanceGroup.Get("/:id", attendanceHandler.GetAttendanceDetailByID)
	attendanceGroup.Delete("/:id", middleware.AdminOrTeamLead(tokenMaker), attendanceHandler.DeleteAttendance)

	// Leave routes
	api.Post("/leave", leaveHandler.RequestLeave)
	api.Put("/leave", leaveHandler.EditLeaveRequest)
	api.Delete("/leaves/:leaveId", leaveHandler.DeleteLeaveRequest)
	api.Get("/leaves", leaveHandler.GetAllLeaves)
	api.Get("/leaves/team", middleware.AdminOrTeamLead(tokenMaker), leaveHandler.GetAllLeavesByTeamLead)
	api.Put("/leave/:id/status", middleware.ExtractUserID(tokenMaker), leaveHandler.UpdateLeaveStatus)
	api.Get("/leave/:leaveId", leaveHandler.GetUserLeaves)
	api.Get("/leave/:id/status", leaveHandler.GetUserLeaveStatus)

	// Image routes
	api.Post("/images/avatar", avatarHandler.UploadAvatar)
}
