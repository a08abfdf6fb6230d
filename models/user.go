package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	UserTypeAdmin    = "admin"
	UserTypeEmployee = "employee"
	UserTypeTeamLead = "teamlead"

	StatusActive   = "active"
	StatusInactive = "inactive"
)

type User struct {
	ID              primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Name            string              `json:"name" bson:"name,omitempty"`
	Email           string              `json:"email" bson:"email,omitempty"`
	Password        string              `json:"password,omitempty" bson:"password,omitempty"`
	UserType        string              `json:"userType" bson:"user_type,omitempty"`
	IsTeamLead      bool                `json:"isTeamLead" bson:"is_team_lead"`
	TeamLeadID      *primitive.ObjectID `json:"teamLeadId,omitempty" bson:"team_lead_id,omitempty"`
	NationalID      string              `json:"nationalId,omitempty" bson:"national_id,omitempty"`
	NationalIDFront string              `json:"nationalIdFront,omitempty" bson:"national_id_front,omitempty"`
	NationalIDBack  string              `json:"nationalIdBack,omitempty" bson:"national_id_back,omitempty"`
	Phone           string              `json:"phone,omitempty" bson:"phone,omitempty"`
	Status          string              `json:"status" bson:"status,omitempty"`
	IsTerminated    bool                `json:"isTerminated" bson:"is_terminated"`
	TerminatedDate  *time.Time          `json:"terminatedDate,omitempty" bson:"terminated_date,omitempty"`
	JoiningDate     *time.Time          `json:"joiningDate,omitempty" bson:"joining_date,omitempty"`
	Avatar          string              `json:"avatar,omitempty" bson:"avatar,omitempty"`
	CreatedAt       time.Time           `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt       time.Time           `json:"updated_at" bson:"updated_at,omitempty"`
}

// IsAdminOrTeamLead reports whether the user holds elevated attendance and
// leave privileges.
func (u *User) IsAdminOrTeamLead() bool {
	return u.UserType == UserTypeAdmin || u.UserType == UserTypeTeamLead || u.IsTeamLead
}

type UserRegisterPayload struct {
	Name     string `json:"name" validate:"required,min=3,max=500"`
	Email    string `json:"email" validate:"required,email,max=500"`
	Password string `json:"password" validate:"required,min=8,max=50"`
	Avatar   string `json:"avatar" validate:"omitempty,url"`
	UserType string `json:"userType" validate:"omitempty,oneof=admin employee teamlead"`
}

type UserLoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserCreatePayload is the admin-side employee creation form. The account is
// created with the default password, the employee changes it after first login.
type UserCreatePayload struct {
	Name            string `json:"name" validate:"required,min=3,max=500"`
	Email           string `json:"email" validate:"required,email,max=500"`
	Avatar          string `json:"avatar" validate:"omitempty,url"`
	UserType        string `json:"userType" validate:"required,oneof=admin employee teamlead"`
	NationalID      string `json:"nationalId" validate:"required,nationalid"`
	NationalIDFront string `json:"nationalIdFront" validate:"omitempty"`
	NationalIDBack  string `json:"nationalIdBack" validate:"omitempty"`
	Phone           string `json:"phone" validate:"omitempty,pkphone"`
	JoiningDate     string `json:"joiningDate" validate:"required,datetime=2006-01-02"`
	TerminatedDate  string `json:"terminatedDate" validate:"omitempty,datetime=2006-01-02"`
	Status          string `json:"status" validate:"required,oneof=active inactive"`
	IsTeamLead      bool   `json:"isTeamLead"`
	IsTerminated    bool   `json:"isTerminated"`
	TeamLeadID      string `json:"teamLeadId" validate:"omitempty"`
}

type UserUpdatePayload struct {
	ID              string `json:"id" validate:"required"`
	Name            string `json:"name,omitempty"`
	Email           string `json:"email,omitempty" validate:"omitempty,email"`
	Password        string `json:"password,omitempty" validate:"omitempty,min=8,max=50"`
	Avatar          string `json:"avatar,omitempty" validate:"omitempty,url"`
	UserType        string `json:"userType,omitempty" validate:"omitempty,oneof=admin employee teamlead"`
	NationalID      string `json:"nationalId,omitempty" validate:"omitempty,nationalid"`
	NationalIDFront string `json:"nationalIdFront,omitempty"`
	NationalIDBack  string `json:"nationalIdBack,omitempty"`
	Phone           string `json:"phone,omitempty" validate:"omitempty,pkphone"`
	JoiningDate     string `json:"joiningDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TerminatedDate  string `json:"terminatedDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status          string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	IsTeamLead      *bool  `json:"isTeamLead,omitempty"`
	IsTerminated    *bool  `json:"isTerminated,omitempty"`
	TeamLeadID      string `json:"teamLeadId,omitempty"`
}

// Claims are the verified identity attributes carried by a bearer token.
type Claims struct {
	UserID     primitive.ObjectID `json:"id"`
	UserType   string             `json:"userType"`
	IsTeamLead bool               `json:"isTeamLead"`
}

func (c *Claims) IsAdminOrTeamLead() bool {
	return c.UserType == UserTypeAdmin || c.IsTeamLead
}
