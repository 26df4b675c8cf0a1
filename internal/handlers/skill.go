package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/portfolio-backend/internal/handlers/dto"
	"github.com/thereayou/portfolio-backend/internal/models"
	"github.com/thereayou/portfolio-backend/internal/storage"
)

type SkillHandler struct {
	store storage.Store
}

func NewSkillHandler(store storage.Store) *SkillHandler {
	return &SkillHandler{store: store}
}

func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.store.ListSkills()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list skills"})
		return
	}
	c.JSON(http.StatusOK, skills)
}

func (h *SkillHandler) Get(c *gin.Context) {
	skill, err := h.store.GetSkill(c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get skill"})
		return
	}
	c.JSON(http.StatusOK, skill)
}

func (h *SkillHandler) Create(c *gin.Context) {
	var req dto.CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": dto.Message(err)})
		return
	}

	skill := &models.Skill{
		Name:        req.Name,
		Category:    req.Category,
		Proficiency: req.Proficiency,
		Icon:        req.Icon,
		Order:       req.Order,
	}

	if err := h.store.CreateSkill(skill); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create skill"})
		return
	}
	c.JSON(http.StatusCreated, skill)
}

func (h *SkillHandler) Update(c *gin.Context) {
	var req dto.UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": dto.Message(err)})
		return
	}

	skill, err := h.store.UpdateSkill(c.Param("id"), req.ToUpdate())
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update skill"})
		return
	}
	c.JSON(http.StatusOK, skill)
}

func (h *SkillHandler) Delete(c *gin.Context) {
	ok, err := h.store.DeleteSkill(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete skill"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted successfully"})
}
