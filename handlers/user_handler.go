package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/usama228/AMS-Backend/models"
	"github.com/usama228/AMS-Backend/pkg/mailer"
	"github.com/usama228/AMS-Backend/pkg/password"
	util "github.com/usama228/AMS-Backend/pkg/utils"
	"github.com/usama228/AMS-Backend/repository"
)

// DefaultPassword is assigned to admin-created accounts; employees change it
// after their first login.
const DefaultPassword = "check_in_123"

type UserHandler struct {
	userRepo repository.UserRepository
	mail     *mailer.Mailer
}

func NewUserHandler(userRepo repository.UserRepository, mail *mailer.Mailer) *UserHandler {
	return &UserHandler{
		userRepo: userRepo,
		mail:     mail,
	}
}

// CreateUser godoc
// @Summary Create employee
// @Description Admin-side employee creation with the default password
// @Tags Users
// @Accept json
// @Produce json
// @Param user body models.UserCreatePayload true "Employee data"
// @Success 201 {object} models.APIResponse "User created successfully"
// @Failure 400 {object} models.APIResponse "Validation error"
// @Failure 409 {object} models.APIResponse "Duplicate email, national ID, or phone"
// @Router /api/users/user [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var payload models.UserCreatePayload
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
			Message:   "Please fill all required fields",
			Error:     errs[0].Msg,
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	if existing, err := h.userRepo.FindByEmail(ctx, payload.Email); err != nil {
		return internalError(c, err)
	} else if existing != nil {
		return c.Status(fiber.StatusConflict).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "User already exists",
		})
	}

	if existing, err := h.userRepo.FindByNationalID(ctx, payload.NationalID); err != nil {
		return internalError(c, err)
	} else if existing != nil {
		return c.Status(fiber.StatusConflict).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "National ID already exists",
		})
	}

	if payload.Phone != "" {
		if existing, err := h.userRepo.FindByPhone(ctx, payload.Phone); err != nil {
			return internalError(c, err)
		} else if existing != nil {
			return c.Status(fiber.StatusConflict).JSON(models.APIResponse{
				Succeeded: false,
				Message:   "Phone already exists",
			})
		}
	}

	hashed, err := password.HashPassword(DefaultPassword)
	if err != nil {
		return internalError(c, err)
	}

	joining, err := util.ParseDay(payload.JoiningDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Joining date is not a valid date",
		})
	}

	newUser := &models.User{
		Name:            payload.Name,
		Email:           payload.Email,
		Password:        hashed,
		Avatar:          payload.Avatar,
		UserType:        payload.UserType,
		NationalID:      payload.NationalID,
		NationalIDFront: payload.NationalIDFront,
		NationalIDBack:  payload.NationalIDBack,
		Phone:           payload.Phone,
		JoiningDate:     &joining,
		Status:          payload.Status,
		IsTeamLead:      payload.IsTeamLead,
		IsTerminated:    payload.IsTerminated,
	}

	if payload.TerminatedDate != "" {
		terminated, err := util.ParseDay(payload.TerminatedDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
				Succeeded: false,
				Message:   "Terminated date is not a valid date",
			})
		}
		newUser.TerminatedDate = &terminated
	}

	if payload.TeamLeadID != "" {
		leadID, err := primitive.ObjectIDFromHex(payload.TeamLeadID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
				Succeeded: false,
				Message:   "Team lead ID format is not valid",
			})
		}
		newUser.TeamLeadID = &leadID
	}

	if _, err := h.userRepo.Create(ctx, newUser); err != nil {
		if err == repository.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(models.APIResponse{
				Succeeded: false,
				Message:   "User already exists",
			})
		}
		return internalError(c, err)
	}

	h.mail.SendAsync(newUser.Email, "Welcome to AMS",
		fmt.Sprintf("Hi %s, your account has been created. Sign in with the default password and change it right away.", newUser.Name))

	newUser.Password = ""
	return c.Status(fiber.StatusCreated).JSON(models.APIResponse{
		Data:      newUser,
		Succeeded: true,
		Message:   "User created successfully",
	})
}

// GetAllUsers godoc
// @Summary List users
// @Description Paginated directory with name search and userType/isTeamLead/status filters
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 10)"
// @Param searchValue query string false "Name substring, case-insensitive"
// @Param userType query string false "Filter by user type (default: everything but admin)"
// @Param isTeamLead query bool false "Filter by team-lead flag"
// @Param status query string false "Employment status (default active)"
// @Success 200 {object} models.APIResponse "Users retrieved successfully"
// @Router /api/users/user [get]
func (h *UserHandler) GetAllUsers(c *fiber.Ctx) error {
	page := int64(c.QueryInt("page", 1))
	limit := int64(c.QueryInt("limit", 10))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	searchValue := c.Query("searchValue", "")
	userType := c.Query("userType", "")
	isTeamLead := c.Query("isTeamLead", "")
	status := c.Query("status", models.StatusActive)

	filter := bson.M{}
	if userType != "" {
		filter["user_type"] = userType
	} else {
		filter["user_type"] = bson.M{"$ne": models.UserTypeAdmin}
	}
	if isTeamLead != "" {
		filter["is_team_lead"] = isTeamLead == "true"
	}
	if status != "" {
		filter["status"] = status
	}
	if searchValue != "" {
		filter["name"] = bson.M{"$regex": searchValue, "$options": "i"}
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	users, total, err := h.userRepo.FindPage(ctx, filter, page, limit)
	if err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.APIResponse{
		Data: models.PagedUsers{
			Users:       users,
			TotalPages:  models.TotalPages(total, limit),
			CurrentPage: page,
			TotalCount:  total,
		},
		Succeeded: true,
		Message:   "Users retrieved successfully",
	})
}

// GetUsersByTeamLead godoc
// @Summary Team roster
// @Description Paginated listing of the users reporting to a team lead
// @Tags Users
// @Produce json
// @Param teamLeadId path string true "Team lead ID"
// @Success 200 {object} models.APIResponse "Users retrieved successfully"
// @Router /api/users/teamUsers/{teamLeadId} [get]
func (h *UserHandler) GetUsersByTeamLead(c *fiber.Ctx) error {
	leadID, err := primitive.ObjectIDFromHex(c.Params("teamLeadId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Team lead ID format is not valid",
		})
	}

	page := int64(c.QueryInt("page", 1))
	limit := int64(c.QueryInt("limit", 10))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	filter := bson.M{
		"team_lead_id": leadID,
		"status":       c.Query("status", models.StatusActive),
	}
	if searchValue := c.Query("searchValue", ""); searchValue != "" {
		filter["name"] = bson.M{"$regex": searchValue, "$options": "i"}
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	users, total, err := h.userRepo.FindPage(ctx, filter, page, limit)
	if err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.APIResponse{
		Data: models.PagedUsers{
			Users:       users,
			TotalPages:  models.TotalPages(total, limit),
			CurrentPage: page,
			TotalCount:  total,
		},
		Succeeded: true,
		Message:   "Users retrieved successfully",
	})
}

// GetUserByID godoc
// @Summary Get user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.APIResponse "User fetched successfully"
// @Failure 404 {object} models.APIResponse "User not found"
// @Router /api/users/user/{id} [get]
func (h *UserHandler) GetUserByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "User ID format is not valid",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := h.userRepo.FindByID(ctx, id)
	if err != nil {
		return internalError(c, err)
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "User not found",
		})
	}

	user.Password = ""
	return c.Status(fiber.StatusOK).JSON(models.APIResponse{
		Data:      user,
		Succeeded: true,
		Message:   "User fetched successfully",
	})
}

// UpdateUser godoc
// @Summary Update user
// @Description Partial update; only provided fields change, password is re-hashed only when present
// @Tags Users
// @Accept json
// @Produce json
// @Param user body models.UserUpdatePayload true "Fields to update"
// @Success 200 {object} models.APIResponse "User updated successfully"
// @Failure 404 {object} models.APIResponse "User not found"
// @Router /api/users/user [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	var payload models.UserUpdatePayload
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

	id, err := primitive.ObjectIDFromHex(payload.ID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "User ID format is not valid",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	user, err := h.userRepo.FindByID(ctx, id)
	if err != nil {
		return internalError(c, err)
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "User not found",
		})
	}

	update := bson.M{}
	if payload.Name != "" {
		update["name"] = payload.Name
	}
	if payload.Email != "" {
		update["email"] = payload.Email
	}
	if payload.Password != "" {
		hashed, err := password.HashPassword(payload.Password)
		if err != nil {
			return internalError(c, err)
		}
		update["password"] = hashed
	}
	if payload.Avatar != "" {
		update["avatar"] = payload.Avatar
	}
	if payload.UserType != "" {
		update["user_type"] = payload.UserType
	}
	if payload.NationalID != "" {
		update["national_id"] = payload.NationalID
	}
	if payload.NationalIDFront != "" {
		update["national_id_front"] = payload.NationalIDFront
	}
	if payload.NationalIDBack != "" {
		update["national_id_back"] = payload.NationalIDBack
	}
	if payload.Phone != "" {
		update["phone"] = payload.Phone
	}
	if payload.JoiningDate != "" {
		joining, err := util.ParseDay(payload.JoiningDate)
		if err == nil {
			update["joining_date"] = joining
		}
	}
	if payload.TerminatedDate != "" {
		terminated, err := util.ParseDay(payload.TerminatedDate)
		if err == nil {
			update["terminated_date"] = terminated
		}
	}
	if payload.Status != "" {
		update["status"] = payload.Status
	}
	if payload.TeamLeadID != "" {
		leadID, err := primitive.ObjectIDFromHex(payload.TeamLeadID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
				Succeeded: false,
				Message:   "Team lead ID format is not valid",
			})
		}
		update["team_lead_id"] = leadID
	}
	if payload.IsTeamLead != nil {
		update["is_team_lead"] = *payload.IsTeamLead
	}
	if payload.IsTerminated != nil {
		update["is_terminated"] = *payload.IsTerminated
		// a terminated employee cannot remain active
		if *payload.IsTerminated {
			update["status"] = models.StatusInactive
		}
	}

	if _, err := h.userRepo.Update(ctx, id, update); err != nil {
		if err == repository.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(models.APIResponse{
				Succeeded: false,
				Message:   "Email, national ID, or phone already exists",
			})
		}
		return internalError(c, err)
	}

	updated, err := h.userRepo.FindByID(ctx, id)
	if err != nil {
		return internalError(c, err)
	}
	if updated != nil {
		updated.Password = ""
	}

	return c.Status(fiber.StatusOK).JSON(models.APIResponse{
		Data:      updated,
		Succeeded: true,
		Message:   "User updated successfully",
	})
}

// DeleteUser godoc
// @Summary Delete user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.APIResponse "User deleted successfully"
// @Failure 404 {object} models.APIResponse "User not found"
// @Router /api/users/user/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "User ID format is not valid",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := h.userRepo.FindByID(ctx, id)
	if err != nil {
		return internalError(c, err)
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "User not found",
		})
	}

	if _, err := h.userRepo.Delete(ctx, id); err != nil {
		return internalError(c, err)
	}

	user.Password = ""
	return c.Status(fiber.StatusOK).JSON(models.APIResponse{
		Data:      user,
		Succeeded: true,
		Message:   "User deleted successfully",
	})
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(models.APIResponse{
		Succeeded: false,
		Message:   "An internal error occurred",
		Error:     err.Error(),
	})
}
