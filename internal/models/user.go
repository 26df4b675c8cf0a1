package models

import (
	"github.com/google/uuid"
)

// User is an admin credential holder. There is no public registration,
// rows come from the seeder only.
type User struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Username string    `json:"username" gorm:"uniqueIndex;not null"`
	Password string    `json:"-" gorm:"not null"` // bcrypt hash
	IsAdmin  bool      `json:"isAdmin" gorm:"not null;default:true"`
}
