package booking

import (
	"context"

	"fixitnow/models"
	"fixitnow/services/scope"
	"fixitnow/utils"

	"go.uber.org/zap"
)

// CreateBooking opens a new pending booking owned by the calling
// customer. The store assigns the identifier and forces the initial
// state; input validation failures come back as validation errors.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, caller scope.Identity, req models.BookingRequest) (*models.Booking, error) {
	if err := scope.AuthorizeCreate(caller); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		CustomerID:  caller.ID,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		RequestedAt: req.RequestedAt,
		Location:    req.Location,
		Notes:       req.Notes,
	}
	if _, err := s.Repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("customerID", caller.ID),
		zap.String("category", string(booking.Category)),
	)
	return booking, nil
}

// GetBooking returns a single booking, subject to the scoping rules.
func (s *DefaultBookingService) GetBooking(ctx context.Context, caller scope.Identity, id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	categories, err := s.callerCategories(ctx, caller)
	if err != nil {
		return nil, err
	}
	if err := scope.AuthorizeView(caller, booking, categories); err != nil {
		return nil, err
	}
	return booking, nil
}

// ListMyBookings returns the caller's own view of the booking store.
func (s *DefaultBookingService) ListMyBookings(ctx context.Context, caller scope.Identity) ([]models.Booking, error) {
	switch caller.Role {
	case models.RoleCustomer:
		return s.Repo.ListByCustomer(ctx, caller.ID)
	case models.RoleProvider:
		return s.Repo.ListByProvider(ctx, caller.ID)
	case models.RoleAdmin:
		return s.Repo.ListAll(ctx)
	default:
		return nil, utils.ForbiddenError("unknown role %q", caller.Role)
	}
}

// ListAssignableBookings returns open bookings the calling provider may
// claim in the given category, oldest first.
func (s *DefaultBookingService) ListAssignableBookings(ctx context.Context, caller scope.Identity, category models.ServiceCategory) ([]models.Booking, error) {
	categories, err := s.callerCategories(ctx, caller)
	if err != nil {
		return nil, err
	}
	if err := scope.AuthorizeAssignableList(caller, category, categories); err != nil {
		return nil, err
	}
	return s.Repo.ListOpenByCategory(ctx, category)
}

// callerCategories resolves the declared category set for provider
// callers; other roles have none.
func (s *DefaultBookingService) callerCategories(ctx context.Context, caller scope.Identity) ([]models.ServiceCategory, error) {
	if caller.Role != models.RoleProvider {
		return nil, nil
	}
	categories, err := s.Categories.Categories(ctx, caller.ID)
	if err != nil {
		if utils.IsKind(err, utils.KindNotFound) {
			// A provider without a profile has declared nothing.
			return nil, nil
		}
		return nil, err
	}
	return categories, nil
}
