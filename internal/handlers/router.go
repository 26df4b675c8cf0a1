package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/thereayou/portfolio-backend/internal/middleware"
	"github.com/thereayou/portfolio-backend/internal/session"
	"github.com/thereayou/portfolio-backend/internal/storage"
)

// Handlers bundles the API handlers for route registration.
type Handlers struct {
	Auth     *AuthHandler
	Projects *ProjectHandler
	Skills   *SkillHandler
	About    *AboutHandler
	Contact  *ContactHandler
}

func New(store storage.Store, sessions *session.Manager, cookieSecure bool) *Handlers {
	return &Handlers{
		Auth:     NewAuthHandler(store, sessions, cookieSecure),
		Projects: NewProjectHandler(store),
		Skills:   NewSkillHandler(store),
		About:    NewAboutHandler(store),
		Contact:  NewContactHandler(store),
	}
}

// Register mounts the API. Reads and the contact form are public, every
// mutation sits behind the session gate.
func (h *Handlers) Register(r *gin.Engine, sessions *session.Manager) {
	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/user", h.Auth.CurrentUser)
	}

	api.GET("/projects", h.Projects.List)
	api.GET("/projects/:id", h.Projects.Get)
	api.GET("/skills", h.Skills.List)
	api.GET("/skills/:id", h.Skills.Get)
	api.GET("/about", h.About.Get)
	api.POST("/contact", h.Contact.Create)

	admin := api.Group("", middleware.RequireAuth(sessions))
	{
		admin.POST("/projects", h.Projects.Create)
		admin.PUT("/projects/:id", h.Projects.Update)
		admin.DELETE("/projects/:id", h.Projects.Delete)

		admin.POST("/skills", h.Skills.Create)
		admin.PUT("/skills/:id", h.Skills.Update)
		admin.DELETE("/skills/:id", h.Skills.Delete)

		admin.PUT("/about", h.About.Upsert)

		admin.GET("/contact/messages", h.Contact.List)
		admin.PUT("/contact/messages/:id/read", h.Contact.MarkRead)
		admin.DELETE("/contact/messages/:id", h.Contact.Delete)
	}
}
