package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Project struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Title           string         `json:"title" gorm:"not null"`
	Description     string         `json:"description" gorm:"not null"`
	LongDescription string         `json:"longDescription"`
	ImageURL        string         `json:"imageUrl"`
	DemoURL         string         `json:"demoUrl"`
	GithubURL       string         `json:"githubUrl"`
	Technologies    pq.StringArray `json:"technologies" gorm:"type:text[];not null"`
	Featured        bool           `json:"featured" gorm:"not null;default:false"`
	Order           int            `json:"order" gorm:"column:display_order;not null;default:0"`
	CreatedAt       time.Time      `json:"createdAt"`
}
