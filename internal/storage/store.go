package storage

import (
	"errors"

	"github.com/thereayou/portfolio-backend/internal/models"
)

// ErrNotFound is returned by Get/Update operations when no row matches.
// Implementations wrap their driver's own not-found error into this one.
var ErrNotFound = errors.New("record not found")

// Store is the persistence contract for the portfolio content and the
// admin credentials. Handlers depend on this interface only, so the gorm
// implementation can be swapped for MemStore in tests.
type Store interface {
	GetUser(id string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(user *models.User) error

	ListProjects() ([]models.Project, error)
	GetProject(id string) (*models.Project, error)
	CreateProject(project *models.Project) error
	UpdateProject(id string, upd ProjectUpdate) (*models.Project, error)
	DeleteProject(id string) (bool, error)

	ListSkills() ([]models.Skill, error)
	GetSkill(id string) (*models.Skill, error)
	CreateSkill(skill *models.Skill) error
	UpdateSkill(id string, upd SkillUpdate) (*models.Skill, error)
	DeleteSkill(id string) (bool, error)

	ListContactMessages() ([]models.ContactMessage, error)
	CreateContactMessage(msg *models.ContactMessage) error
	MarkMessageRead(id string) (bool, error)
	DeleteContactMessage(id string) (bool, error)

	GetAbout() (*models.AboutInfo, error)
	UpsertAbout(info *models.AboutInfo) (*models.AboutInfo, error)
}

// ProjectUpdate carries a partial update; nil fields are left unchanged.
type ProjectUpdate struct {
	Title           *string
	Description     *string
	LongDescription *string
	ImageURL        *string
	DemoURL         *string
	GithubURL       *string
	Technologies    []string
	Featured        *bool
	Order           *int
}

// Apply merges the set fields into p.
func (u ProjectUpdate) Apply(p *models.Project) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.LongDescription != nil {
		p.LongDescription = *u.LongDescription
	}
	if u.ImageURL != nil {
		p.ImageURL = *u.ImageURL
	}
	if u.DemoURL != nil {
		p.DemoURL = *u.DemoURL
	}
	if u.GithubURL != nil {
		p.GithubURL = *u.GithubURL
	}
	if u.Technologies != nil {
		p.Technologies = u.Technologies
	}
	if u.Featured != nil {
		p.Featured = *u.Featured
	}
	if u.Order != nil {
		p.Order = *u.Order
	}
}

// SkillUpdate carries a partial update; nil fields are left unchanged.
type SkillUpdate struct {
	Name        *string
	Category    *string
	Proficiency *int
	Icon        *string
	Order       *int
}

func (u SkillUpdate) Apply(s *models.Skill) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Category != nil {
		s.Category = *u.Category
	}
	if u.Proficiency != nil {
		s.Proficiency = *u.Proficiency
	}
	if u.Icon != nil {
		s.Icon = *u.Icon
	}
	if u.Order != nil {
		s.Order = *u.Order
	}
}
