package dto

type UpsertAboutRequest struct {
	Name        string `json:"name" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Bio         string `json:"bio" binding:"required"`
	AvatarURL   string `json:"avatarUrl" binding:"omitempty,url"`
	ResumeURL   string `json:"resumeUrl" binding:"omitempty,url"`
	GithubURL   string `json:"githubUrl" binding:"omitempty,url"`
	LinkedinURL string `json:"linkedinUrl" binding:"omitempty,url"`
	TwitterURL  string `json:"twitterUrl" binding:"omitempty,url"`
	Email       string `json:"email" binding:"omitempty,email"`
}
