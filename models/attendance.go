package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Attendance struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID       primitive.ObjectID `json:"userId" bson:"user_id,omitempty"`
	Date         string             `json:"date" bson:"date,omitempty"`
	CheckIn      time.Time          `json:"checkIn" bson:"check_in,omitempty"`
	CheckOut     *time.Time         `json:"checkOut,omitempty" bson:"check_out,omitempty"`
	BreakTime    int64              `json:"breakTime" bson:"break_time"`
	Notes        string             `json:"notes,omitempty" bson:"notes,omitempty"`
	WorkingHours float64            `json:"workingHours" bson:"working_hours"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

// TotalWorkMinutes returns the whole minutes elapsed between check-in and
// check-out, or 0 when either timestamp is missing.
func (a *Attendance) TotalWorkMinutes() int64 {
	if a.CheckOut == nil || a.CheckIn.IsZero() {
		return 0
	}
	return int64(a.CheckOut.Sub(a.CheckIn).Minutes())
}

// CalculateWorkingHours recomputes the working-hours field from the current
// check-in/check-out/break-time values. Callers must never persist a record
// without going through this; client-supplied working hours are not trusted.
func (a *Attendance) CalculateWorkingHours() {
	adjusted := a.TotalWorkMinutes() - a.BreakTime
	if adjusted <= 0 {
		a.WorkingHours = 0
		return
	}
	a.WorkingHours = math.Round(float64(adjusted)/60*100) / 100
}

type AttendanceCheckInPayload struct {
	UserID    string `json:"userId" validate:"required"`
	CheckIn   string `json:"checkIn" validate:"required"`
	CheckOut  string `json:"checkOut" validate:"omitempty"`
	BreakTime int64  `json:"breakTime" validate:"omitempty,min=0"`
	Notes     string `json:"notes"`
}

// AttendanceEditPayload is the self-service edit form. BreakTime is a pointer
// so "not provided" and "reset to zero" stay distinguishable.
type AttendanceEditPayload struct {
	ID        string `json:"id" validate:"required"`
	CheckIn   string `json:"checkIn" validate:"required"`
	CheckOut  string `json:"checkOut" validate:"omitempty"`
	BreakTime *int64 `json:"breakTime" validate:"omitempty,min=0"`
	Notes     string `json:"notes"`
}

type AttendanceAdminEditPayload struct {
	AttendanceID string `json:"attendanceId" validate:"required"`
	CheckIn      string `json:"checkIn" validate:"omitempty"`
	CheckOut     string `json:"checkOut" validate:"omitempty"`
	Notes        string `json:"notes"`
}

type AttendanceWithUser struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	UserID       primitive.ObjectID `json:"userId" bson:"user_id"`
	Date         string             `json:"date" bson:"date"`
	CheckIn      time.Time          `json:"checkIn" bson:"check_in"`
	CheckOut     *time.Time         `json:"checkOut,omitempty" bson:"check_out,omitempty"`
	BreakTime    int64              `json:"breakTime" bson:"break_time"`
	Notes        string             `json:"notes,omitempty" bson:"notes,omitempty"`
	WorkingHours float64            `json:"workingHours" bson:"working_hours"`
	UserName     string             `json:"userName" bson:"user_name"`
	UserEmail    string             `json:"userEmail" bson:"user_email"`
	UserType     string             `json:"userType" bson:"user_type"`
}
