package scope

import (
	"fixitnow/models"
	"fixitnow/utils"
)

// Identity is the resolved caller: who they are and what role they
// hold. Every service call receives one explicitly; there is no ambient
// session state.
type Identity struct {
	ID   string
	Role models.Role
}

// HasCategory reports whether c is in the declared set.
func HasCategory(categories []models.ServiceCategory, c models.ServiceCategory) bool {
	for _, declared := range categories {
		if declared == c {
			return true
		}
	}
	return false
}

// AuthorizeCreate checks that the caller may create a booking for
// themselves. Only customers create bookings.
func AuthorizeCreate(caller Identity) error {
	if caller.Role != models.RoleCustomer {
		return utils.ForbiddenError("only customers may create bookings")
	}
	return nil
}

// AuthorizeView decides whether the caller may read the booking.
//
// The ordering between NotFound and Forbidden is fixed: an unrelated
// customer gets NotFound so the booking's existence does not leak; a
// provider or admin whose scope excludes the booking gets Forbidden,
// since their role could in principle see it and ambiguity with deleted
// data would be worse than confirming existence.
func AuthorizeView(caller Identity, booking *models.Booking, providerCategories []models.ServiceCategory) error {
	switch caller.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleCustomer:
		if booking.CustomerID == caller.ID {
			return nil
		}
		return utils.NotFoundError("booking %s not found", booking.ID)
	case models.RoleProvider:
		if booking.ProviderID == caller.ID {
			return nil
		}
		if booking.Status == models.BookingPending && HasCategory(providerCategories, booking.Category) {
			return nil
		}
		return utils.ForbiddenError("booking %s is outside your scope", booking.ID)
	default:
		return utils.ForbiddenError("unknown role %q", caller.Role)
	}
}

// AuthorizeDecide checks that the caller may attempt a decision on the
// booking. Eligibility is category membership; the provider already
// assigned to the booking passes the scope check so that a repeated
// decision surfaces as AlreadyDecided rather than Forbidden.
func AuthorizeDecide(caller Identity, booking *models.Booking, providerCategories []models.ServiceCategory) error {
	if caller.Role != models.RoleProvider {
		return utils.ForbiddenError("only providers may decide bookings")
	}
	if booking.ProviderID == caller.ID {
		return nil
	}
	if !HasCategory(providerCategories, booking.Category) {
		return utils.ForbiddenError("you are not eligible for category %s", booking.Category)
	}
	return nil
}

// AuthorizeAssignableList checks that the caller may list open bookings
// in the category.
func AuthorizeAssignableList(caller Identity, category models.ServiceCategory, providerCategories []models.ServiceCategory) error {
	if caller.Role != models.RoleProvider {
		return utils.ForbiddenError("only providers may list assignable bookings")
	}
	if !models.ValidServiceCategory(category) {
		return utils.ValidationError("unknown service category %q", category)
	}
	if !HasCategory(providerCategories, category) {
		return utils.ForbiddenError("you are not eligible for category %s", category)
	}
	return nil
}
