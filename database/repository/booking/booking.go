package bookingRepo

import (
	"context"

	"fixitnow/models"
)

// BookingRepository is the durable store for booking records. It owns
// the records exclusively; callers hold identifiers only. DecideStatus
// is the sole mutation path for a booking's status and provider
// assignment.
type BookingRepository interface {
	// Create inserts a new booking record, assigning its identifier and
	// forcing it into the pending state. Returns the assigned ID.
	Create(ctx context.Context, booking *models.Booking) (string, error)
	// GetByID retrieves a booking by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// ListByCustomer returns the customer's bookings, newest first.
	ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error)
	// ListOpenByCategory returns pending bookings in the given category,
	// oldest first, so the longest-waiting request is served first.
	ListOpenByCategory(ctx context.Context, category models.ServiceCategory) ([]models.Booking, error)
	// ListByProvider returns bookings assigned to the provider, any
	// status, newest first.
	ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error)
	// ListAll returns every booking, newest first.
	ListAll(ctx context.Context) ([]models.Booking, error)
	// DecideStatus atomically moves a booking from the expected status to
	// the next one and assigns the deciding provider. It fails with a
	// conflict when the stored status no longer equals expected.
	DecideStatus(ctx context.Context, id string, expected, next models.BookingStatus, providerID string) (*models.Booking, error)
	// CountByStatus returns the number of bookings per status.
	CountByStatus(ctx context.Context) (map[models.BookingStatus]int64, error)
	// CountByCategory returns the number of bookings per category.
	CountByCategory(ctx context.Context) (map[models.ServiceCategory]int64, error)
}
