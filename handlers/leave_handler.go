package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/usama228/AMS-Backend/models"
	util "github.com/usama228/AMS-Backend/pkg/utils"
	"github.com/usama228/AMS-Backend/repository"
)

type LeaveHandler struct {
	leaveRepo repository.LeaveRepository
	userRepo  repository.UserRepository
}

func NewLeaveHandler(leaveRepo repository.LeaveRepository, userRepo repository.UserRepository) *LeaveHandler {
	return &LeaveHandler{
		leaveRepo: leaveRepo,
		userRepo:  userRepo,
	}
}

// RequestLeave godoc
// @Summary Submit leave request
// @Description Validates date order and rejects intervals overlapping an existing request of the same user
// @Tags Leave
// @Accept json
// @Produce json
// @Param leave body models.LeaveCreatePayload true "Leave request data"
// @Success 201 {object} models.APIResponse "Leave request submitted successfully"
// @Failure 400 {object} models.APIResponse "Missing fields or end date before start date"
// @Failure 409 {object} models.APIResponse "Overlapping leave request"
// @Router /api/leave [post]
func (h *LeaveHandler) RequestLeave(c *fiber.Ctx) error {
	var payload models.LeaveCreatePayload
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
			Message:   "User ID, leave type, start date, and end date are required",
		})
	}

	if payload.EndDate < payload.StartDate {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "End date must be after start date",
		})
	}

	userID, err := primitive.ObjectIDFromHex(payload.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "User ID format is not valid",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	overlapping, err := h.leaveRepo.FindOverlapping(ctx, userID, payload.StartDate, payload.EndDate)
	if err != nil {
		return internalError(c, err)
	}
	if len(overlapping) > 0 {
		return c.Status(fiber.StatusConflict).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Leave request already exists for the specified dates",
		})
	}

	start, _ := util.ParseDay(payload.StartDate)
	end, _ := util.ParseDay(payload.EndDate)
	workingDays, err := util.WorkingDaysBetween(start, end)
	if err != nil {
		return internalError(c, err)
	}

	newLeave := &models.Leave{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		LeaveType:   payload.LeaveType,
		StartDate:   payload.StartDate,
		EndDate:     payload.EndDate,
		Reason:      payload.Reason,
		Document:    payload.Document,
		Status:      models.LeaveStatusPending,
		WorkingDays: workingDays,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if _, err := h.leaveRepo.Create(ctx, newLeave); err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.APIResponse{
		Data:      newLeave,
		Succeeded: true,
		Message:   "Leave request submitted successfully",
	})
}

// EditLeaveRequest godoc
// @Summary Edit leave request
// @Description Overwrites type, dates, reason and document of an existing request
// @Tags Leave
// @Accept json
// @Produce json
// @Param leave body models.LeaveEditPayload true "Leave request data"
// @Success 200 {object} models.APIResponse "Leave request updated successfully"
// @Failure 400 {object} models.APIResponse "Missing fields or end date before start date"
// @Failure 404 {object} models.APIResponse "Leave request not found"
// @Router /api/leave [put]
func (h *LeaveHandler) EditLeaveRequest(c *fiber.Ctx) error {
	var payload models.LeaveEditPayload
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
			Message:   "Leave ID, leave type, start date, and end date are required",
		})
	}

	if payload.EndDate < payload.StartDate {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "End date must be after start date",
		})
	}

	id, err := primitive.ObjectIDFromHex(payload.ID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Leave ID format is not valid",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	leave, err := h.leaveRepo.FindByID(ctx, id)
	if err != nil {
		return internalError(c, err)
	}
	if leave == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Leave request not found",
		})
	}

	start, _ := util.ParseDay(payload.StartDate)
	end, _ := util.ParseDay(payload.EndDate)
	workingDays, err := util.WorkingDaysBetween(start, end)
	if err != nil {
		return internalError(c, err)
	}

	update := bson.M{
		"leave_type":   payload.LeaveType,
		"start_date":   payload.StartDate,
		"end_date":     payload.EndDate,
		"reason":       payload.Reason,
		"document":     payload.Document,
		"working_days": workingDays,
	}
	if _, err := h.leaveRepo.Update(ctx, id, update); err != nil {
		return internalError(c, err)
	}

	leave.LeaveType = payload.LeaveType
	leave.StartDate = payload.StartDate
	leave.EndDate = payload.EndDate
	leave.Reason = payload.Reason
	leave.Document = payload.Document
	leave.WorkingDays = workingDays

	return c.Status(fiber.StatusOK).JSON(models.APIResponse{
		Data:      leave,
		Succeeded: true,
		Message:   "Leave request updated successfully",
	})
}

// DeleteLeaveRequest godoc
// @Summary Delete leave request
// @Tags Leave
// @Produce json
// @Param leaveId path string true "Leave ID"
// @Success 200 {object} models.APIResponse "Leave request deleted successfully"
// @Failure 404 {object} models.APIResponse "Leave request not found"
// @Router /api/leaves/{leaveId} [delete]
func (h *LeaveHandler) DeleteLeaveRequest(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("leaveId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Leave ID is required",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	leave, err := h.leaveRepo.FindByID(ctx, id)
	if err != nil {
		return internalError(c, err)
	}
	if leave == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Leave request not found",
		})
	}

	if _, err := h.leaveRepo.Delete(ctx, id); err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.APIResponse{
		Succeeded: true,
		Message:   "Leave request deleted successfully",
	})
}

// UpdateLeaveStatus godoc
// @Summary Update leave status
// @Description Approves, rejects, or resets a request. Approver attribution follows the status: set on Approved/Rejected, cleared on Pending.
// @Tags Leave
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Leave ID"
// @Param status body models.LeaveStatusPayload true "New status"
// @Success 200 {object} models.APIResponse "Leave status updated"
// @Failure 400 {object} models.APIResponse "Status is not one of Approved, Rejected, Pending"
// @Failure 404 {object} models.APIResponse "Leave request not found"
// @Router /api/leave/{id}/status [put]
func (h *LeaveHandler) UpdateLeaveStatus(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Leave ID format is not valid",
		})
	}

	var payload models.LeaveStatusPayload
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
			Message:   "Status must be one of: Approved, Rejected, Pending",
		})
	}

	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Not authenticated",
		})
	}

	var approvedBy *primitive.ObjectID
	if payload.Status == models.LeaveStatusApproved || payload.Status == models.LeaveStatusRejected {
		actorID := claims.UserID
		approvedBy = &actorID
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	result, err := h.leaveRepo.UpdateStatus(ctx, id, payload.Status, approvedBy)
	if err != nil {
		return internalError(c, err)
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Leave request not found",
		})
	}

	leave, err := h.leaveRepo.FindByID(ctx, id)
	if err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.APIResponse{
		Data:      leave,
		Succeeded: true,
		Message:   fmt.Sprintf("Leave status updated to %s", payload.Status),
	})
}

// GetAllLeaves godoc
// @Summary List leave requests
// @Description Paginated listing with optional userId and status filters
// @Tags Leave
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 10)"
// @Param userId query string false "Filter by user"
// @Param status query string false "Filter by status"
// @Success 200 {object} models.APIResponse "Leaves fetched successfully"
// @Router /api/leaves [get]
func (h *LeaveHandler) GetAllLeaves(c *fiber.Ctx) error {
	page := int64(c.QueryInt("page", 1))
	limit := int64(c.QueryInt("limit", 10))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	filter := bson.M{}
	if userID := c.Query("userId", ""); userID != "" {
		objID, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
				Succeeded: false,
				Message:   "User ID format is not valid",
			})
		}
		filter["user_id"] = objID
	}
	if status := c.Query("status", ""); status != "" {
		filter["status"] = status
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	leaves, total, err := h.leaveRepo.FindPage(ctx, filter, page, limit)
	if err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.APIResponse{
		Data: models.PagedLeaves{
			Leaves:      leaves,
			TotalPages:  models.TotalPages(total, limit),
			CurrentPage: page,
			TotalCount:  total,
		},
		Succeeded: true,
		Message:   "Leaves fetched successfully",
	})
}

// GetAllLeavesByTeamLead godoc
// @Summary List team leave requests
// @Description Paginated listing restricted to the acting team lead's roster, with text search and leaveType/status filters
// @Tags Leave
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 10)"
// @Param searchValue query string false "Substring over reason and leave type, case-insensitive"
// @Param leaveType query string false "Filter by leave type"
// @Param status query string false "Filter by status"
// @Success 200 {object} models.APIResponse "Leaves retrieved successfully"
// @Router /api/leaves/team [get]
func (h *LeaveHandler) GetAllLeavesByTeamLead(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Not authenticated",
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

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	memberIDs, err := h.userRepo.FindTeamMemberIDs(ctx, claims.UserID)
	if err != nil {
		return internalError(c, err)
	}
	if memberIDs == nil {
		// $in rejects null; an empty roster must still query cleanly
		memberIDs = []primitive.ObjectID{}
	}

	filter := bson.M{"user_id": bson.M{"$in": memberIDs}}
	if searchValue := c.Query("searchValue", ""); searchValue != "" {
		or := []bson.M{
			{"reason": bson.M{"$regex": searchValue, "$options": "i"}},
			{"leave_type": bson.M{"$regex": searchValue, "$options": "i"}},
		}
		// a full hex ID in the search box matches the requesting user directly
		if searchID, err := primitive.ObjectIDFromHex(searchValue); err == nil {
			or = append(or, bson.M{"user_id": searchID})
		}
		filter["$or"] = or
	}
	if leaveType := c.Query("leaveType", ""); leaveType != "" {
		filter["leave_type"] = bson.M{"$regex": leaveType, "$options": "i"}
	}
	if status := c.Query("status", ""); status != "" {
		filter["status"] = status
	}

	leaves, total, err := h.leaveRepo.FindPage(ctx, filter, page, limit)
	if err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.APIResponse{
		Data: models.PagedLeaves{
			Leaves:      leaves,
			TotalPages:  models.TotalPages(total, limit),
			CurrentPage: page,
			TotalCount:  total,
		},
		Succeeded: true,
		Message:   "Leaves retrieved successfully",
	})
}

// GetUserLeaves godoc
// @Summary Leave request detail
// @Description Single request joined with minimal user info
// @Tags Leave
// @Produce json
// @Param leaveId path string true "Leave ID"
// @Success 200 {object} models.APIResponse "Leave fetched successfully"
// @Failure 404 {object} models.APIResponse "Leave request not found"
// @Router /api/leave/{leaveId} [get]
func (h *LeaveHandler) GetUserLeaves(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("leaveId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Leave ID format is not valid",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	leave, err := h.leaveRepo.FindByIDWithUser(ctx, id)
	if err != nil {
		return internalError(c, err)
	}
	if leave == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "No leaves found for this user",
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.APIResponse{
		Data:      leave,
		Succeeded: true,
		Message:   "Leave fetched successfully",
	})
}

// GetUserLeaveStatus godoc
// @Summary Leave status projection
// @Tags Leave
// @Produce json
// @Param id path string true "Leave ID"
// @Success 200 {object} models.APIResponse "Leave status retrieved successfully"
// @Failure 404 {object} models.APIResponse "Leave request not found"
// @Router /api/leave/{id}/status [get]
func (h *LeaveHandler) GetUserLeaveStatus(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Leave ID format is not valid",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	leave, err := h.leaveRepo.FindByID(ctx, id)
	if err != nil {
		return internalError(c, err)
	}
	if leave == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Leave request not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.APIResponse{
		Data: models.LeaveStatusView{
			ID:        leave.ID,
			Status:    leave.Status,
			UserID:    leave.UserID,
			CreatedAt: leave.CreatedAt,
			UpdatedAt: leave.UpdatedAt,
		},
		Succeeded: true,
		Message:   "Leave status retrieved successfully",
	})
}
