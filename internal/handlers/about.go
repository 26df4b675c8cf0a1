package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/portfolio-backend/internal/handlers/dto"
	"github.com/thereayou/portfolio-backend/internal/models"
	"github.com/thereayou/portfolio-backend/internal/storage"
)

type AboutHandler struct {
	store storage.Store
}

func NewAboutHandler(store storage.Store) *AboutHandler {
	return &AboutHandler{store: store}
}

func (h *AboutHandler) Get(c *gin.Context) {
	info, err := h.store.GetAbout()
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "About info not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get about info"})
		return
	}
	c.JSON(http.StatusOK, info)
}

// Upsert creates the singleton on first call, replaces it afterwards.
func (h *AboutHandler) Upsert(c *gin.Context) {
	var req dto.UpsertAboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": dto.Message(err)})
		return
	}

	info, err := h.store.UpsertAbout(&models.AboutInfo{
		Name:        req.Name,
		Title:       req.Title,
		Bio:         req.Bio,
		AvatarURL:   req.AvatarURL,
		ResumeURL:   req.ResumeURL,
		GithubURL:   req.GithubURL,
		LinkedinURL: req.LinkedinURL,
		TwitterURL:  req.TwitterURL,
		Email:       req.Email,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update about info"})
		return
	}
	c.JSON(http.StatusOK, info)
}
