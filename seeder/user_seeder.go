package seeder

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/usama228/AMS-Backend/models"
	"github.com/usama228/AMS-Backend/pkg/password"
	"github.com/usama228/AMS-Backend/repository"
)

const (
	adminEmail    = "admin@ams.local"
	adminPassword = "admin_123456"
)

// SeedAdminUser inserts the default admin account when it does not exist yet.
func SeedAdminUser(userRepo repository.UserRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := userRepo.FindByEmail(ctx, adminEmail)
	if err != nil {
		log.Printf("Admin seeding skipped, lookup failed: %v", err)
		return
	}
	if existing != nil {
		log.Printf("Admin seeding skipped, '%s' already exists", adminEmail)
		return
	}

	hashed, err := password.HashPassword(adminPassword)
	if err != nil {
		log.Printf("Admin seeding failed, could not hash password: %v", err)
		return
	}

	admin := &models.User{
		ID:        primitive.NewObjectID(),
		Name:      "System Admin",
		Email:     adminEmail,
		Password:  hashed,
		UserType:  models.UserTypeAdmin,
		Status:    models.StatusActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := userRepo.Create(ctx, admin); err != nil {
		log.Printf("Admin seeding failed: %v", err)
		return
	}
	log.Printf("Admin user '%s' seeded", adminEmail)
}
