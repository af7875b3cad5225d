package booking

import (
	"context"

	"fixitnow/models"
	"fixitnow/services/scope"
	"fixitnow/utils"

	"go.uber.org/zap"
)

// DecideBooking applies a provider decision to a pending booking.
//
// The lifecycle admits exactly one transition: PENDING moves to ACCEPTED
// or REJECTED and both are terminal. The transition itself is a
// conditional update in the store, so of any number of concurrent
// deciders at most one succeeds; every loser gets AlreadyDecided and
// must re-fetch to see the authoritative state. Decisions are not
// idempotent: repeating one, same provider and same outcome included,
// fails AlreadyDecided, since a second identical call usually means the
// caller lost track of state.
func (s *DefaultBookingService) DecideBooking(ctx context.Context, caller scope.Identity, id string, outcome models.BookingStatus) (*models.Booking, error) {
	if outcome != models.BookingAccepted && outcome != models.BookingRejected {
		return nil, utils.ValidationError("outcome must be %s or %s", models.BookingAccepted, models.BookingRejected)
	}
	if caller.Role != models.RoleProvider {
		return nil, utils.ForbiddenError("only providers may decide bookings")
	}

	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	categories, err := s.callerCategories(ctx, caller)
	if err != nil {
		return nil, err
	}
	if err := scope.AuthorizeDecide(caller, booking, categories); err != nil {
		return nil, err
	}

	decided, err := s.Repo.DecideStatus(ctx, id, models.BookingPending, outcome, caller.ID)
	if err != nil {
		if utils.IsKind(err, utils.KindConflict) {
			// Lost the race or the booking was already terminal.
			return nil, utils.AlreadyDecidedError("booking %s is no longer available", id)
		}
		return nil, err
	}

	utils.GetLogger().Info("booking decided",
		zap.String("bookingID", id),
		zap.String("providerID", caller.ID),
		zap.String("outcome", string(outcome)),
	)
	return decided, nil
}
