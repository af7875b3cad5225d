package handlers

import (
	"net/http"

	"fixitnow/middleware"
	"fixitnow/models"
	"fixitnow/services/booking"
	"fixitnow/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle operations.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler opens a new pending booking for the calling
// customer.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	identity, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.CreateBooking(c.Request.Context(), identity, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetBookingHandler returns a single booking, subject to scoping.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	identity, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	b, err := h.Service.GetBooking(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListMyBookingsHandler returns the caller's own view of the store.
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	identity, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	bookings, err := h.Service.ListMyBookings(c.Request.Context(), identity)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// ListAssignableBookingsHandler returns the open bookings the calling
// provider may claim in the requested category, oldest first.
func (h *BookingHandler) ListAssignableBookingsHandler(c *gin.Context) {
	identity, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	category := models.ServiceCategory(c.Query("category"))
	bookings, err := h.Service.ListAssignableBookings(c.Request.Context(), identity, category)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// DecideBookingHandler applies the provider's accept/reject decision.
// A lost race comes back as 409 with the already_decided kind so the
// client can re-fetch and re-render.
func (h *BookingHandler) DecideBookingHandler(c *gin.Context) {
	identity, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req models.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	decided, err := h.Service.DecideBooking(c.Request.Context(), identity, c.Param("id"), req.Outcome)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, decided)
}
