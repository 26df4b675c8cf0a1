package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a submission from the public contact form. It is
// immutable after creation except for the read flag.
type ContactMessage struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message" gorm:"not null"`
	Read      bool      `json:"read" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"createdAt"`
}
