package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/thereayou/portfolio-backend/internal/handlers/dto"
	"github.com/thereayou/portfolio-backend/internal/session"
	"github.com/thereayou/portfolio-backend/internal/storage"
)

type AuthHandler struct {
	store        storage.Store
	sessions     *session.Manager
	cookieSecure bool
}

func NewAuthHandler(store storage.Store, sessions *session.Manager, cookieSecure bool) *AuthHandler {
	return &AuthHandler{store: store, sessions: sessions, cookieSecure: cookieSecure}
}

// Login verifies the credentials and sets the session cookie. Unknown
// username and wrong password answer identically.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": dto.Message(err)})
		return
	}

	user, err := h.store.GetUserByUsername(req.Username)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	cookie, err := h.sessions.Create(c.Request.Context(), user.ID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}

	c.SetCookie(session.CookieName, cookie, int(h.sessions.TTL().Seconds()), "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "user": user})
}

// Logout revokes the session if one is present. It never fails: logging
// out without a cookie is a no-op.
func (h *AuthHandler) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(session.CookieName); err == nil {
		_ = h.sessions.Revoke(c.Request.Context(), cookie)
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// CurrentUser returns the authenticated user or 401.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	cookie, err := c.Cookie(session.CookieName)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	userID, err := h.sessions.Resolve(c.Request.Context(), cookie)
	if errors.Is(err, session.ErrInvalid) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session lookup failed"})
		return
	}

	user, err := h.store.GetUser(userID)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load user"})
		return
	}

	c.JSON(http.StatusOK, user)
}
