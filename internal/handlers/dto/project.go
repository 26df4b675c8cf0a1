package dto

import "github.com/thereayou/portfolio-backend/internal/storage"

type CreateProjectRequest struct {
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description" binding:"required"`
	LongDescription string   `json:"longDescription"`
	ImageURL        string   `json:"imageUrl" binding:"omitempty,url"`
	DemoURL         string   `json:"demoUrl" binding:"omitempty,url"`
	GithubURL       string   `json:"githubUrl" binding:"omitempty,url"`
	Technologies    []string `json:"technologies" binding:"required,min=1,dive,required"`
	Featured        bool     `json:"featured"`
	Order           int      `json:"order"`
}

// UpdateProjectRequest is a partial body: absent fields stay nil and are
// not touched by the update.
type UpdateProjectRequest struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	LongDescription *string  `json:"longDescription"`
	ImageURL        *string  `json:"imageUrl" binding:"omitempty,url"`
	DemoURL         *string  `json:"demoUrl" binding:"omitempty,url"`
	GithubURL       *string  `json:"githubUrl" binding:"omitempty,url"`
	Technologies    []string `json:"technologies" binding:"omitempty,min=1,dive,required"`
	Featured        *bool    `json:"featured"`
	Order           *int     `json:"order"`
}

func (r UpdateProjectRequest) ToUpdate() storage.ProjectUpdate {
	return storage.ProjectUpdate{
		Title:           r.Title,
		Description:     r.Description,
		LongDescription: r.LongDescription,
		ImageURL:        r.ImageURL,
		DemoURL:         r.DemoURL,
		GithubURL:       r.GithubURL,
		Technologies:    r.Technologies,
		Featured:        r.Featured,
		Order:           r.Order,
	}
}
