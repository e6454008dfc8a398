package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"banglabet-backend/internal/config"
	"banglabet-backend/internal/middleware"
	"banglabet-backend/internal/models"
	"banglabet-backend/internal/services"
)

type AuthHandler struct {
	store    *services.Store
	sessions *services.SessionService
	cfg      *config.Config
}

func NewAuthHandler(store *services.Store, sessions *services.SessionService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		store:    store,
		sessions: sessions,
		cfg:      cfg,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	hash, err := services.HashPassword(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	user, err := h.store.CreateUser(&models.User{
		Username: req.Username,
		Password: hash,
		Email:    req.Email,
		Phone:    req.Phone,
		FullName: req.FullName,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
		return
	}

	// Auto-login on registration.
	if err := h.openSession(c, user.ID); err != nil {
		log.Error().Err(err).Msg("failed to open session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	user := h.store.GetUserByUsername(req.Username)
	if user == nil || !services.VerifyPassword(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}
	if user.IsBanned {
		c.JSON(http.StatusForbidden, gin.H{"error": "Account is banned"})
		return
	}

	if err := h.openSession(c, user.ID); err != nil {
		log.Error().Err(err).Msg("failed to open session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.GetString("session_id")
	h.store.DeleteSession(sessionID)

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.secureCookie(), true)
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

func (h *AuthHandler) CurrentUser(c *gin.Context) {
	user := c.MustGet("user").(*models.User)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// MakeAdmin elevates the session user when the supplied secret matches the
// configured one. There is no unauthenticated variant.
func (h *AuthHandler) MakeAdmin(c *gin.Context) {
	var req models.MakeAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	if req.Secret != h.cfg.AdminSecret {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid secret"})
		return
	}

	isAdmin := true
	user := h.store.UpdateUser(c.GetInt64("user_id"), models.UserUpdate{IsAdmin: &isAdmin})
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	log.Info().Int64("user_id", user.ID).Msg("user elevated to admin")
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req models.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	user := h.store.UpdateUser(c.GetInt64("user_id"), models.UserUpdate{
		Email:     req.Email,
		Phone:     req.Phone,
		FullName:  req.FullName,
		AvatarURL: req.AvatarURL,
	})
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req models.PasswordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	user := c.MustGet("user").(*models.User)
	if !services.VerifyPassword(req.CurrentPassword, user.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect"})
		return
	}

	hash, err := services.HashPassword(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if !h.store.SetUserPassword(user.ID, hash) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

func (h *AuthHandler) openSession(c *gin.Context, userID int64) error {
	sessionID := h.store.CreateSession(userID)
	token, err := h.sessions.IssueToken(userID, sessionID)
	if err != nil {
		return err
	}

	c.SetCookie(middleware.SessionCookie, token,
		int(services.SessionDuration.Seconds()), "/", "", h.secureCookie(), true)
	return nil
}

func (h *AuthHandler) secureCookie() bool {
	return h.cfg.Env == "production"
}
