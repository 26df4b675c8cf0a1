package models

import (
	"github.com/google/uuid"
)

// Skill category is one of: Frontend, Backend, 3D/Graphics, Tools, Other.
// The dto layer enforces the set at the validation boundary.
type Skill struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Category    string    `json:"category" gorm:"not null"`
	Proficiency int       `json:"proficiency" gorm:"not null"` // 1-100
	Icon        string    `json:"icon"`
	Order       int       `json:"order" gorm:"column:display_order;not null;default:0"`
}
