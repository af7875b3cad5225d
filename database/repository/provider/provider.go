package providerRepo

import (
	"context"

	"fixitnow/models"
)

// ProviderProfileRepository defines methods for provider profile data
// access. Profiles are keyed by the owning user's ID.
type ProviderProfileRepository interface {
	// Create inserts a new provider profile.
	Create(ctx context.Context, profile *models.ProviderProfile) error
	// GetByUserID retrieves the profile for the given provider.
	GetByUserID(ctx context.Context, userID string) (*models.ProviderProfile, error)
	// Update applies a partial update and returns the resulting profile.
	Update(ctx context.Context, userID string, update models.ProviderProfileUpdate) (*models.ProviderProfile, error)
	// GetCategories returns the provider's declared category set.
	GetCategories(ctx context.Context, userID string) ([]models.ServiceCategory, error)
}
