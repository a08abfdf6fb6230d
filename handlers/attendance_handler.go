package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/usama228/AMS-Backend/models"
	util "github.com/usama228/AMS-Backend/pkg/utils"
	"github.com/usama228/AMS-Backend/repository"
)

type AttendanceHandler struct {
	attendanceRepo repository.AttendanceRepository
	userRepo       repository.UserRepository
}

func NewAttendanceHandler(attendanceRepo repository.AttendanceRepository, userRepo repository.UserRepository) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
	}
}

// timestamps arrive as RFC3339; a date-time without offset is accepted and
// read as UTC
func parseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", value)
}

// canBackdate reports whether the actor may touch attendance dated before the
// Monday of the current week.
func canBackdate(claims *models.Claims) bool {
	return claims.UserType == models.UserTypeAdmin || claims.IsTeamLead
}

func beforeCurrentWeek(date string) bool {
	monday := util.DayOf(util.MondayOf(time.Now().UTC()))
	return date < monday
}

// CheckIn godoc
// @Summary Check in
// @Description Creates the attendance record for the derived calendar day
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attendance body models.AttendanceCheckInPayload true "Check-in data"
// @Success 201 {object} models.APIResponse "Check-in successful"
// @Failure 400 {object} models.APIResponse "Missing fields or backdated check-in"
// @Failure 409 {object} models.APIResponse "Already checked in that day"
// @Router /api/attendance [post]
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	var payload models.AttendanceCheckInPayload
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
			Message:   "User ID and check-in time are required",
		})
	}

	userID, err := primitive.ObjectIDFromHex(payload.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "User ID format is not valid",
		})
	}

	checkIn, err := parseTimestamp(payload.CheckIn)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Check-in time is not a valid timestamp",
		})
	}

	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Not authenticated",
		})
	}

	date := util.DayOf(checkIn)
	if !canBackdate(claims) && beforeCurrentWeek(date) {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "You cannot mark the attendance of previous dates, please contact admin",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	existing, err := h.attendanceRepo.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		return internalError(c, err)
	}
	if existing != nil {
		return c.Status(fiber.StatusConflict).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "User already checked in today",
		})
	}

	attendance := &models.Attendance{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Date:      date,
		CheckIn:   checkIn,
		BreakTime: payload.BreakTime,
		Notes:     payload.Notes,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if payload.CheckOut != "" {
		checkOut, err := parseTimestamp(payload.CheckOut)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
				Succeeded: false,
				Message:   "Check-out time is not a valid timestamp",
			})
		}
		attendance.CheckOut = &checkOut
	}
	attendance.CalculateWorkingHours()

	if _, err := h.attendanceRepo.Create(ctx, attendance); err != nil {
		// a concurrent check-in can beat the existence check; the unique
		// index reports it as a duplicate
		if err == repository.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(models.APIResponse{
				Succeeded: false,
				Message:   "User already checked in today",
			})
		}
		return internalError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.APIResponse{
		Data:      attendance,
		Succeeded: true,
		Message:   "Check-in successful",
	})
}

// EditAttendance godoc
// @Summary Edit own attendance
// @Description Partial self-service edit; working hours are recomputed server-side
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attendance body models.AttendanceEditPayload true "Fields to update"
// @Success 200 {object} models.APIResponse "Attendance record updated successfully"
// @Failure 400 {object} models.APIResponse "Missing fields or backdated edit"
// @Failure 404 {object} models.APIResponse "Attendance record not found"
// @Router /api/attendance [put]
func (h *AttendanceHandler) EditAttendance(c *fiber.Ctx) error {
	var payload models.AttendanceEditPayload
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
			Message:   "Attendance ID and check-in time are required",
		})
	}

	id, err := primitive.ObjectIDFromHex(payload.ID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Attendance ID format is not valid",
		})
	}

	checkIn, err := parseTimestamp(payload.CheckIn)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Check-in time is not a valid timestamp",
		})
	}

	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Not authenticated",
		})
	}

	// the restriction is evaluated against the new check-in's day
	if !canBackdate(claims) && beforeCurrentWeek(util.DayOf(checkIn)) {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "You cannot mark the attendance of previous dates, please contact admin",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	record, err := h.attendanceRepo.FindByID(ctx, id)
	if err != nil {
		return internalError(c, err)
	}
	if record == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Attendance record not found",
		})
	}

	record.CheckIn = checkIn
	if payload.CheckOut != "" {
		checkOut, err := parseTimestamp(payload.CheckOut)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
				Succeeded: false,
				Message:   "Check-out time is not a valid timestamp",
			})
		}
		record.CheckOut = &checkOut
	}
	if payload.BreakTime != nil {
		record.BreakTime = *payload.BreakTime
	}
	if payload.Notes != "" {
		record.Notes = payload.Notes
	}
	record.CalculateWorkingHours()

	update := bson.M{
		"check_in":      record.CheckIn,
		"break_time":    record.BreakTime,
		"notes":         record.Notes,
		"working_hours": record.WorkingHours,
	}
	if record.CheckOut != nil {
		update["check_out"] = record.CheckOut
	}

	if _, err := h.attendanceRepo.Update(ctx, id, update); err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.APIResponse{
		Data:      record,
		Succeeded: true,
		Message:   "Attendance record updated successfully",
	})
}

// EditCheckInOutByAdmin godoc
// @Summary Privileged attendance edit
// @Description Admin or team lead edits any record; role is re-verified against the stored user
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attendance body models.AttendanceAdminEditPayload true "Fields to update"
// @Success 200 {object} models.APIResponse "Check-in and check-out times updated successfully"
// @Failure 403 {object} models.APIResponse "Actor is not admin or team lead"
// @Failure 404 {object} models.APIResponse "Attendance record not found"
// @Router /api/attendance/admin [put]
func (h *AttendanceHandler) EditCheckInOutByAdmin(c *fiber.Ctx) error {
	var payload models.AttendanceAdminEditPayload
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
			Message:   "Attendance ID is required",
		})
	}

	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Not authenticated",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	// the stored role decides, not the token claim
	actor, err := h.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return internalError(c, err)
	}
	if actor == nil || !actor.IsAdminOrTeamLead() {
		return c.Status(fiber.StatusForbidden).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Only admin or team lead users can edit check-ins and check-outs",
		})
	}

	id, err := primitive.ObjectIDFromHex(payload.AttendanceID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Attendance ID format is not valid",
		})
	}

	record, err := h.attendanceRepo.FindByID(ctx, id)
	if err != nil {
		return internalError(c, err)
	}
	if record == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Attendance record not found",
		})
	}

	if payload.CheckIn != "" {
		checkIn, err := parseTimestamp(payload.CheckIn)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
				Succeeded: false,
				Message:   "Check-in time is not a valid timestamp",
			})
		}
		record.CheckIn = checkIn
	}
	if payload.CheckOut != "" {
		checkOut, err := parseTimestamp(payload.CheckOut)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
				Succeeded: false,
				Message:   "Check-out time is not a valid timestamp",
			})
		}
		record.CheckOut = &checkOut
	}
	if payload.Notes != "" {
		record.Notes = payload.Notes
	}
	record.CalculateWorkingHours()

	update := bson.M{
		"check_in":      record.CheckIn,
		"notes":         record.Notes,
		"working_hours": record.WorkingHours,
	}
	if record.CheckOut != nil {
		update["check_out"] = record.CheckOut
	}

	if _, err := h.attendanceRepo.Update(ctx, id, update); err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.APIResponse{
		Data:      record,
		Succeeded: true,
		Message:   "Check-in and check-out times updated successfully",
	})
}

// DeleteAttendance godoc
// @Summary Delete attendance record
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attendance ID"
// @Success 200 {object} models.APIResponse "Record deleted successfully"
// @Failure 404 {object} models.APIResponse "No record found"
// @Router /api/attendance/{id} [delete]
func (h *AttendanceHandler) DeleteAttendance(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Attendance ID format is not valid",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	record, err := h.attendanceRepo.FindByID(ctx, id)
	if err != nil {
		return internalError(c, err)
	}
	if record == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "No record found",
		})
	}

	if _, err := h.attendanceRepo.Delete(ctx, id); err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.APIResponse{
		Data:      record,
		Succeeded: true,
		Message:   "Record deleted successfully",
	})
}

// GetAttendanceDetailByID godoc
// @Summary Attendance detail
// @Tags Attendance
// @Produce json
// @Param id path string true "Attendance ID"
// @Success 200 {object} models.APIResponse "Record fetched successfully"
// @Failure 404 {object} models.APIResponse "Record not found"
// @Router /api/attendance/{id} [get]
func (h *AttendanceHandler) GetAttendanceDetailByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Attendance ID format is not valid",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	record, err := h.attendanceRepo.FindByID(ctx, id)
	if err != nil {
		return internalError(c, err)
	}
	if record == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "Record not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.APIResponse{
		Data:      record,
		Succeeded: true,
		Message:   "Record fetched successfully",
	})
}

// GetUserAttendance godoc
// @Summary Per-user attendance history
// @Tags Attendance
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} models.APIResponse "Attendance records fetched successfully"
// @Router /api/attendance/user/{userId} [get]
func (h *AttendanceHandler) GetUserAttendance(c *fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.APIResponse{
			Succeeded: false,
			Message:   "User ID format is not valid",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	records, err := h.attendanceRepo.FindByUserID(ctx, userID)
	if err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.APIResponse{
		Data:      records,
		Succeeded: true,
		Message:   "Attendance records fetched successfully",
	})
}

// GetAllCheckedInEmployees godoc
// @Summary Today's checked-in employees
// @Description Lists today's records with a non-null check-in, joined with minimal user info. An empty day yields an empty list, not an error.
// @Tags Attendance
// @Produce json
// @Success 200 {object} models.APIResponse "Checked-in records retrieved successfully"
// @Router /api/attendance [get]
func (h *AttendanceHandler) GetAllCheckedInEmployees(c *fiber.Ctx) error {
	today := util.DayOf(time.Now())

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	records, err := h.attendanceRepo.FindCheckedInByDate(ctx, today)
	if err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.APIResponse{
		Data:      records,
		Succeeded: true,
		Message:   "Checked-in records retrieved successfully for all users",
	})
}
