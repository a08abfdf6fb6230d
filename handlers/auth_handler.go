package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/usama228/AMS-Backend/models"
	"github.com/usama228/AMS-Backend/pkg/password"
	"github.com/usama228/AMS-Backend/pkg/token"
	util "github.com/usama228/AMS-Backend/pkg/utils"
	"github.com/usama228/AMS-Backend/repository"
)

type AuthHandler struct {
	userRepo   repository.UserRepository
	tokenMaker *token.Maker
}

func NewAuthHandler(userRepo repository.UserRepository, tokenMaker *token.Maker) *AuthHandler {
	return &AuthHandler{
		userRepo:   userRepo,
		tokenMaker: tokenMaker,
	}
}

// Login godoc
// @Summary Login
// @Description Verifies credentials and returns the user together with a bearer token
// @Tags Users
// @Accept json
// @Produce json
// @Param credentials body models.UserLoginPayload true "Login credentials"
// @Success 200 {object} models.APIResponse "Login successful"
// @Failure 400 {object} models.APIResponse "Missing or wrong credentials"
// @Failure 403 {object} models.APIResponse "Inactive or terminated account"
// @Router /api/users/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var payload models.UserLoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Invalid request body",
			Error:     err.Error(),
		})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Email and password are required",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := h.userRepo.FindByEmail(ctx, payload.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "An internal error occurred",
			Error:     err.Error(),
		})
	}
	if user == nil || !password.CheckPasswordHash(payload.Password, user.Password) {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Invalid email or password",
		})
	}

	if user.Status != models.StatusActive {
		return c.Status(fiber.StatusForbidden).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "User is inactive, contact admin",
		})
	}
	if user.IsTerminated {
		return c.Status(fiber.StatusForbidden).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "User is terminated, contact admin",
		})
	}

	signed, err := h.tokenMaker.GenerateToken(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Failed to generate token",
			Error:     err.Error(),
		})
	}

	user.Password = ""
	return c.Status(fiber.StatusOK).JSON(models.APIResponse{
		Data: fiber.Map{
			"user":  user,
			"token": signed,
		},
		Succeeded: true,
		Message:   "Login successful",
	})
}

// Register godoc
// @Summary Register
// @Description Self-service signup with a chosen password
// @Tags Users
// @Accept json
// @Produce json
// @Param user body models.UserRegisterPayload true "Registration data"
// @Success 201 {object} models.APIResponse "User registered successfully"
// @Failure 400 {object} models.APIResponse "Validation error"
// @Failure 409 {object} models.APIResponse "User already exists"
// @Router /api/users/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var payload models.UserRegisterPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Invalid request body",
			Error:     err.Error(),
		})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Validation failed",
			Error:     errs[0].Msg,
		})
	}

	hashed, err := password.HashPassword(payload.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "An internal error occurred",
			Error:     err.Error(),
		})
	}

	userType := payload.UserType
	if userType == "" {
		userType = models.UserTypeEmployee
	}

	newUser := &models.User{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: hashed,
		Avatar:   payload.Avatar,
		UserType: userType,
		Status:   models.StatusActive,
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.userRepo.Create(ctx, newUser); err != nil {
		if err == repository.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(models.APIResponse{
				Succeeded: false,
				Message:   "User already exists",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "An internal error occurred",
			Error:     err.Error(),
		})
	}

	newUser.Password = ""
	return c.Status(fiber.StatusCreated).JSON(models.APIResponse{
		Data:      newUser,
		Succeeded: true,
		Message:   "User registered successfully",
	})
}

// Logout godoc
// @Summary Logout
// @Description Stateless acknowledgement; clients drop the token
// @Tags Users
// @Produce json
// @Success 200 {object} models.APIResponse "Logout successful"
// @Router /api/users/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(models.APIResponse{
		Succeeded: true,
		Message:   "Logout successful",
	})
}
