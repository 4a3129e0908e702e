package handlers

import (
	"errors"
	"net/http"

	gkRepo "goleironow/database/repository/goalkeeper"
	userRepo "goleironow/database/repository/user"
	"goleironow/middleware"
	"goleironow/models"
	"goleironow/services/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var sessionService session.SessionService

// SetSessionService wires the session service used by the auth and favorite
// handlers.
func SetSessionService(svc session.SessionService) {
	sessionService = svc
}

var (
	userDirectory userRepo.UserRepository
	gkDirectory   gkRepo.GoalkeeperRepository
)

// SetDirectories wires the repositories backing the login pickers.
func SetDirectories(users userRepo.UserRepository, gks gkRepo.GoalkeeperRepository) {
	userDirectory = users
	gkDirectory = gks
}

// AuthenticateHandler logs an identity in by id and role.
func AuthenticateHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		ID   int         `json:"id" binding:"required"`
		Role models.Role `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := sessionService.Login(req.ID, req.Role)
	switch {
	case errors.Is(err, session.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
	case errors.Is(err, session.ErrIdentityNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No account found for this id and role"})
	case err != nil:
		logger.Error("Login failed", zap.Int("id", req.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
	default:
		c.JSON(http.StatusOK, resp)
	}
}

// LogoutHandler clears the current session. Always succeeds.
func LogoutHandler(c *gin.Context) {
	sessionService.Logout(middleware.CurrentToken(c))
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// SessionHandler returns the current session's identity.
func SessionHandler(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	c.JSON(http.StatusOK, gin.H{
		"role":       sess.Record.Role,
		"user":       sess.Record.User,
		"goalkeeper": sess.Record.Goalkeeper,
	})
}

type loginOption struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// LoginOptionsHandler lists the accounts available to the demo login picker.
func LoginOptionsHandler(c *gin.Context) {
	logger := getLogger(c)

	users, err := userDirectory.GetAll()
	if err != nil {
		logger.Error("Failed to list users for login", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load login options"})
		return
	}
	gks, err := gkDirectory.GetAll()
	if err != nil {
		logger.Error("Failed to list goalkeepers for login", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load login options"})
		return
	}

	clients := make([]loginOption, 0, len(users))
	for _, u := range users {
		clients = append(clients, loginOption{ID: u.ID, Name: u.Name})
	}
	keepers := make([]loginOption, 0, len(gks))
	for _, g := range gks {
		keepers = append(keepers, loginOption{ID: g.ID, Name: g.Name})
	}

	c.JSON(http.StatusOK, gin.H{"clients": clients, "goalkeepers": keepers})
}
