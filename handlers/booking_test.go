package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fixitnow/models"
	"fixitnow/services/scope"
	"fixitnow/utils"

	"github.com/gin-gonic/gin"
)

// stubBookingService returns a canned booking or error for every
// operation.
type stubBookingService struct {
	booking *models.Booking
	err     error
}

func (s *stubBookingService) CreateBooking(context.Context, scope.Identity, models.BookingRequest) (*models.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingService) GetBooking(context.Context, scope.Identity, string) (*models.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingService) ListMyBookings(context.Context, scope.Identity) ([]models.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	return nil, nil
}

func (s *stubBookingService) ListAssignableBookings(context.Context, scope.Identity, models.ServiceCategory) ([]models.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	return nil, nil
}

func (s *stubBookingService) DecideBooking(context.Context, scope.Identity, string, models.BookingStatus) (*models.Booking, error) {
	return s.booking, s.err
}

func newTestRouter(svc *stubBookingService, identity *scope.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc)
	if identity != nil {
		r.Use(func(c *gin.Context) {
			c.Set("identity", *identity)
			c.Next()
		})
	}
	r.POST("/bookings", h.CreateBookingHandler)
	r.GET("/bookings/my", h.ListMyBookingsHandler)
	r.GET("/bookings/:id", h.GetBookingHandler)
	r.POST("/bookings/:id/decision", h.DecideBookingHandler)
	return r
}

func sampleBooking() *models.Booking {
	now := time.Now().UTC()
	return &models.Booking{
		ID:          "bk-1",
		CustomerID:  "cust-1",
		Category:    models.CategoryPlumber,
		RequestedAt: now.Add(24 * time.Hour),
		Location:    "12 Oak Street",
		Status:      models.BookingPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestCreateBookingHandlerCreated(t *testing.T) {
	identity := scope.Identity{ID: "cust-1", Role: models.RoleCustomer}
	r := newTestRouter(&stubBookingService{booking: sampleBooking()}, &identity)

	body := `{"category":"Plumber","requestedAt":"2026-09-10T09:00:00Z","location":"12 Oak Street"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, http.StatusCreated, w.Body.String())
	}
}

func TestCreateBookingHandlerRejectsMalformedBody(t *testing.T) {
	identity := scope.Identity{ID: "cust-1", Role: models.RoleCustomer}
	r := newTestRouter(&stubBookingService{booking: sampleBooking()}, &identity)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(`{"category":}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestHandlersRequireIdentity(t *testing.T) {
	r := newTestRouter(&stubBookingService{booking: sampleBooking()}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings/my", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestHandlerErrorStatusMapping(t *testing.T) {
	identity := scope.Identity{ID: "prov-1", Role: models.RoleProvider}

	cases := []struct {
		err    error
		status int
	}{
		{utils.AlreadyDecidedError("no longer available"), http.StatusConflict},
		{utils.ForbiddenError("outside your categories"), http.StatusForbidden},
		{utils.NotFoundError("no such booking"), http.StatusNotFound},
		{utils.ValidationError("bad outcome"), http.StatusBadRequest},
	}
	for _, tc := range cases {
		r := newTestRouter(&stubBookingService{err: tc.err}, &identity)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/bookings/bk-1/decision", strings.NewReader(`{"outcome":"ACCEPTED"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != tc.status {
			t.Fatalf("error %v: status = %d, want %d", tc.err, w.Code, tc.status)
		}
	}
}

func TestListMyBookingsHandlerReturnsEmptyArray(t *testing.T) {
	identity := scope.Identity{ID: "cust-1", Role: models.RoleCustomer}
	r := newTestRouter(&stubBookingService{}, &identity)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings/my", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Fatalf("body = %s, want []", body)
	}
}
