package booking

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"fixitnow/models"
	"fixitnow/utils"
)

// memBookingRepo is an in-memory BookingRepository with the same
// semantics as the Mongo implementation, including the atomic
// conditional status update.
type memBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
	seq      int
	base     time.Time
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{
		bookings: make(map[string]*models.Booking),
		base:     time.Now().UTC(),
	}
}

func (r *memBookingRepo) nextTime() time.Time {
	r.seq++
	return r.base.Add(time.Duration(r.seq) * time.Millisecond)
}

func (r *memBookingRepo) Create(_ context.Context, booking *models.Booking) (string, error) {
	if booking.CustomerID == "" {
		return "", utils.ValidationError("customerId is required")
	}
	if !models.ValidServiceCategory(booking.Category) {
		return "", utils.ValidationError("unknown service category %q", booking.Category)
	}
	if booking.RequestedAt.IsZero() {
		return "", utils.ValidationError("requestedAt is required")
	}
	if booking.Location == "" {
		return "", utils.ValidationError("location is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.nextTime()
	booking.ID = fmt.Sprintf("bk-%d", r.seq)
	booking.Status = models.BookingPending
	booking.ProviderID = ""
	booking.CreatedAt = now
	booking.UpdatedAt = now

	stored := *booking
	r.bookings[booking.ID] = &stored
	return booking.ID, nil
}

func (r *memBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, utils.NotFoundError("booking %s not found", id)
	}
	copied := *b
	return &copied, nil
}

func (r *memBookingRepo) list(filter func(*models.Booking) bool, ascending bool) []models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if filter(b) {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if ascending {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *memBookingRepo) ListByCustomer(_ context.Context, customerID string) ([]models.Booking, error) {
	return r.list(func(b *models.Booking) bool { return b.CustomerID == customerID }, false), nil
}

func (r *memBookingRepo) ListOpenByCategory(_ context.Context, category models.ServiceCategory) ([]models.Booking, error) {
	return r.list(func(b *models.Booking) bool {
		return b.Status == models.BookingPending && b.Category == category
	}, true), nil
}

func (r *memBookingRepo) ListByProvider(_ context.Context, providerID string) ([]models.Booking, error) {
	return r.list(func(b *models.Booking) bool { return b.ProviderID == providerID }, false), nil
}

func (r *memBookingRepo) ListAll(_ context.Context) ([]models.Booking, error) {
	return r.list(func(*models.Booking) bool { return true }, false), nil
}

func (r *memBookingRepo) DecideStatus(_ context.Context, id string, expected, next models.BookingStatus, providerID string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, utils.NotFoundError("booking %s not found", id)
	}
	if b.Status != expected {
		return nil, utils.ConflictError("booking %s is no longer %s", id, expected)
	}
	b.Status = next
	b.ProviderID = providerID
	b.UpdatedAt = r.nextTime()
	copied := *b
	return &copied, nil
}

func (r *memBookingRepo) CountByStatus(_ context.Context) (map[models.BookingStatus]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[models.BookingStatus]int64)
	for _, b := range r.bookings {
		counts[b.Status]++
	}
	return counts, nil
}

func (r *memBookingRepo) CountByCategory(_ context.Context) (map[models.ServiceCategory]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[models.ServiceCategory]int64)
	for _, b := range r.bookings {
		counts[b.Category]++
	}
	return counts, nil
}

// staticCategories is a CategorySource backed by a fixed map.
type staticCategories map[string][]models.ServiceCategory

func (s staticCategories) Categories(_ context.Context, providerID string) ([]models.ServiceCategory, error) {
	categories, ok := s[providerID]
	if !ok {
		return nil, utils.NotFoundError("provider profile for user %s not found", providerID)
	}
	return categories, nil
}
