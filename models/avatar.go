package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Avatar records the metadata of an uploaded image. Records are immutable
// after creation; there is no deletion path.
type Avatar struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Filename     string             `json:"filename" bson:"filename"`
	OriginalName string             `json:"originalname" bson:"originalname"`
	MimeType     string             `json:"mimetype" bson:"mimetype"`
	Size         int64              `json:"size" bson:"size"`
	Path         string             `json:"path" bson:"path"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}
