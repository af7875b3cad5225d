package booking

import (
	"context"

	bookingRepo "fixitnow/database/repository/booking"
	"fixitnow/models"
	"fixitnow/services/scope"
)

// BookingService composes the booking store, access scoping, and the
// dispatch state machine into the operations the transport layer
// exposes. Every call takes the resolved caller identity explicitly.
type BookingService interface {
	// CreateBooking opens a new pending booking for the calling customer.
	CreateBooking(ctx context.Context, caller scope.Identity, req models.BookingRequest) (*models.Booking, error)
	// GetBooking returns a single booking, subject to scoping.
	GetBooking(ctx context.Context, caller scope.Identity, id string) (*models.Booking, error)
	// ListMyBookings returns the caller's own view: a customer's
	// requests newest first, a provider's assigned bookings, or
	// everything for an admin.
	ListMyBookings(ctx context.Context, caller scope.Identity) ([]models.Booking, error)
	// ListAssignableBookings returns open bookings in the category the
	// calling provider may claim, oldest first.
	ListAssignableBookings(ctx context.Context, caller scope.Identity, category models.ServiceCategory) ([]models.Booking, error)
	// DecideBooking applies the provider's accept/reject decision.
	DecideBooking(ctx context.Context, caller scope.Identity, id string, outcome models.BookingStatus) (*models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo       bookingRepo.BookingRepository
	Categories scope.CategorySource
}
