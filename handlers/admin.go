package handlers

import (
	"net/http"

	"fixitnow/services/admin"
	"fixitnow/services/booking"
	"fixitnow/services/user"
	"fixitnow/utils"

	"fixitnow/middleware"
	"fixitnow/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates the read-only admin surface.
type AdminHandler struct {
	Admin    admin.AdminService
	Users    user.UserService
	Bookings booking.BookingService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(as admin.AdminService, us user.UserService, bs booking.BookingService) *AdminHandler {
	return &AdminHandler{Admin: as, Users: us, Bookings: bs}
}

// GetStatsHandler returns aggregate booking and user counts.
func (h *AdminHandler) GetStatsHandler(c *gin.Context) {
	stats, err := h.Admin.GetStats(c.Request.Context())
	if err != nil {
		getLogger(c).Error("failed to assemble admin stats", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListAllUsersHandler returns all users, sensitive fields excluded.
func (h *AdminHandler) ListAllUsersHandler(c *gin.Context) {
	users, err := h.Users.GetAllUsers(c.Request.Context())
	if err != nil {
		getLogger(c).Error("failed to fetch all users", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// ListAllBookingsHandler returns every booking, newest first.
func (h *AdminHandler) ListAllBookingsHandler(c *gin.Context) {
	identity, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	bookings, err := h.Bookings.ListMyBookings(c.Request.Context(), identity)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}
