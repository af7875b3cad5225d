package admin

import (
	"context"

	bookingRepo "fixitnow/database/repository/booking"
	"fixitnow/models"
	"fixitnow/services/user"
)

// Stats is the aggregate snapshot the admin dashboard renders.
type Stats struct {
	BookingsByStatus   map[models.BookingStatus]int64   `json:"bookingsByStatus"`
	BookingsByCategory map[models.ServiceCategory]int64 `json:"bookingsByCategory"`
	UsersByRole        map[models.Role]int64            `json:"usersByRole"`
}

// AdminService exposes the read-only aggregate surface. Admins never
// mutate bookings; the single-decision invariant belongs to providers
// alone.
type AdminService interface {
	GetStats(ctx context.Context) (*Stats, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Bookings bookingRepo.BookingRepository
	Users    user.UserService
}

// GetStats assembles booking and user aggregates.
func (s *DefaultAdminService) GetStats(ctx context.Context) (*Stats, error) {
	byStatus, err := s.Bookings.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.Bookings.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}
	byRole, err := s.Users.CountByRole(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{
		BookingsByStatus:   byStatus,
		BookingsByCategory: byCategory,
		UsersByRole:        byRole,
	}, nil
}
