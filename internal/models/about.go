package models

import "time"

// AboutInfoID is the fixed primary key of the single about row.
const AboutInfoID = "main"

// AboutInfo is a singleton: exactly one row, keyed AboutInfoID.
type AboutInfo struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Title       string    `json:"title" gorm:"not null"`
	Bio         string    `json:"bio" gorm:"not null"`
	AvatarURL   string    `json:"avatarUrl"`
	ResumeURL   string    `json:"resumeUrl"`
	GithubURL   string    `json:"githubUrl"`
	LinkedinURL string    `json:"linkedinUrl"`
	TwitterURL  string    `json:"twitterUrl"`
	Email       string    `json:"email"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
