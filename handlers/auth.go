package handlers

import (
	"net/http"

	"fixitnow/middleware"
	"fixitnow/models"
	"fixitnow/services/user"
	"fixitnow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes registration, login, and the authenticated user's
// own record.
type AuthHandler struct {
	Service user.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// RegisterHandler creates a new customer or provider account.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req models.UserRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler verifies credentials and returns a fresh token.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), creds)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MeHandler returns the authenticated user's record.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	identity, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	usr, err := h.Service.GetUserByID(c.Request.Context(), identity.ID)
	if err != nil {
		getLogger(c).Error("failed to fetch own user record", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// LogoutHandler revokes the authenticated user's current token.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	identity, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	if err := h.Service.RevokeToken(c.Request.Context(), identity.ID); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}
