package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/portfolio-backend/internal/handlers/dto"
	"github.com/thereayou/portfolio-backend/internal/models"
	"github.com/thereayou/portfolio-backend/internal/storage"
)

type ContactHandler struct {
	store storage.Store
}

func NewContactHandler(store storage.Store) *ContactHandler {
	return &ContactHandler{store: store}
}

// Create accepts a public contact-form submission.
func (h *ContactHandler) Create(c *gin.Context) {
	var req dto.CreateContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": dto.Message(err)})
		return
	}

	msg := &models.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Read:      false,
		CreatedAt: time.Now(),
	}

	if err := h.store.CreateContactMessage(msg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save message"})
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// List returns all messages, oldest first.
func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.store.ListContactMessages()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// MarkRead flips the read flag. Repeating it on a read message succeeds.
func (h *ContactHandler) MarkRead(c *gin.Context) {
	ok, err := h.store.MarkMessageRead(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update message"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message marked as read"})
}

func (h *ContactHandler) Delete(c *gin.Context) {
	ok, err := h.store.DeleteContactMessage(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete message"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}
