package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	LeaveStatusPending  = "Pending"
	LeaveStatusApproved = "Approved"
	LeaveStatusRejected = "Rejected"
)

// Leave dates are stored as "2006-01-02" strings; the interval is inclusive on
// both ends.
type Leave struct {
	ID          primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	UserID      primitive.ObjectID  `json:"userId" bson:"user_id,omitempty"`
	LeaveType   string              `json:"leaveType" bson:"leave_type,omitempty"`
	StartDate   string              `json:"startDate" bson:"start_date,omitempty"`
	EndDate     string              `json:"endDate" bson:"end_date,omitempty"`
	Reason      string              `json:"reason,omitempty" bson:"reason,omitempty"`
	Document    string              `json:"document,omitempty" bson:"document,omitempty"`
	Status      string              `json:"status" bson:"status,omitempty"`
	ApprovedBy  *primitive.ObjectID `json:"approvedBy,omitempty" bson:"approved_by,omitempty"`
	WorkingDays int                 `json:"workingDays" bson:"working_days"`
	CreatedAt   time.Time           `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt   time.Time           `json:"updated_at" bson:"updated_at,omitempty"`
}

// Overlaps reports whether the request's inclusive [start,end] interval
// intersects [start,end] of another request. ISO dates compare correctly as
// strings.
func (l *Leave) Overlaps(startDate, endDate string) bool {
	return l.StartDate <= endDate && l.EndDate >= startDate
}

type LeaveCreatePayload struct {
	UserID    string `json:"userId" validate:"required"`
	LeaveType string `json:"leaveType" validate:"required"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason"`
	Document  string `json:"document"`
}

type LeaveEditPayload struct {
	ID        string `json:"id" validate:"required"`
	LeaveType string `json:"leaveType" validate:"required"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason"`
	Document  string `json:"document"`
}

type LeaveStatusPayload struct {
	Status string `json:"status" validate:"required,oneof=Approved Rejected Pending"`
}

type LeaveWithUser struct {
	Leave    `bson:",inline"`
	UserName string `json:"userName" bson:"user_name"`
}

// LeaveStatusView is the status-only projection returned by the status lookup
// endpoint.
type LeaveStatusView struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Status    string             `json:"status" bson:"status"`
	UserID    primitive.ObjectID `json:"userId" bson:"user_id"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}
