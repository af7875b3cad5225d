package handlers

import (
	"net/http"

	"fixitnow/middleware"
	"fixitnow/models"
	"fixitnow/services/provider"
	"fixitnow/utils"

	"github.com/gin-gonic/gin"
)

// ProviderHandler exposes provider profile management.
type ProviderHandler struct {
	Service provider.ProviderService
}

// NewProviderHandler creates a new ProviderHandler.
func NewProviderHandler(svc provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{Service: svc}
}

// GetProfileHandler returns the calling provider's profile.
func (h *ProviderHandler) GetProfileHandler(c *gin.Context) {
	identity, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	profile, err := h.Service.GetProfile(c.Request.Context(), identity.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler applies a partial profile update for the calling
// provider.
func (h *ProviderHandler) UpdateProfileHandler(c *gin.Context) {
	identity, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var update models.ProviderProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	profile, err := h.Service.UpdateProfile(c.Request.Context(), identity.ID, update)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
