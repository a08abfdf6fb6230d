package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/usama228/AMS-Backend/models"
	"github.com/usama228/AMS-Backend/pkg/token"
	"github.com/usama228/AMS-Backend/repository"
)

func bearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if !(len(parts) == 2 && parts[0] == "Bearer") {
		return "", false
	}
	return parts[1], true
}

// ExtractUserID verifies signature and expiry only; the embedded claims are
// trusted verbatim. Endpoints that must survive user deletion mid-session use
// Authenticated instead.
func ExtractUserID(maker *token.Maker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(models.APIResponse{
				Succeeded: false,
				Message:   "Authorization header is missing or malformed",
			})
		}

		claims, err := maker.ValidateToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.APIResponse{
				Succeeded: false,
				Message:   "Invalid or expired token",
				Error:     err.Error(),
			})
		}

		c.Locals("user", claims)
		return c.Next()
	}
}

// Authenticated is the strong verification tier: signature check plus a live
// lookup of the referenced user record.
func Authenticated(maker *token.Maker, userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(models.APIResponse{
				Succeeded: false,
				Message:   "Authorization header is missing or malformed",
			})
		}

		claims, err := maker.ValidateToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.APIResponse{
				Succeeded: false,
				Message:   "Invalid or expired token",
				Error:     err.Error(),
			})
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		user, err := userRepo.FindByID(ctx, claims.UserID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(models.APIResponse{
				Succeeded: false,
				Message:   "An internal error occurred",
				Error:     err.Error(),
			})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.APIResponse{
				Succeeded: false,
				Message:   "User not found or not authorized",
			})
		}

		c.Locals("user", claims)
		c.Locals("account", user)
		return c.Next()
	}
}

// AdminOrTeamLead gates privileged attendance and leave endpoints. Claims are
// taken from the token; role is admin or the team-lead flag is set.
func AdminOrTeamLead(maker *token.Maker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(models.APIResponse{
				Succeeded: false,
				Message:   "Authorization header is missing or malformed",
			})
		}

		claims, err := maker.ValidateToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.APIResponse{
				Succeeded: false,
				Message:   "Invalid or expired token",
				Error:     err.Error(),
			})
		}

		if !claims.IsAdminOrTeamLead() {
			return c.Status(fiber.StatusForbidden).JSON(models.APIResponse{
				Succeeded: false,
				Message:   "Access denied. You have no such right to perform this action",
			})
		}

		c.Locals("user", claims)
		return c.Next()
	}
}
