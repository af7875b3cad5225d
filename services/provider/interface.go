package provider

import (
	"context"

	providerRepo "fixitnow/database/repository/provider"
	"fixitnow/models"
	"fixitnow/services/scope"
)

// ProviderService manages provider profiles, in particular the declared
// category set that the access scoping layer reads.
type ProviderService interface {
	// GetProfile returns the provider's profile.
	GetProfile(ctx context.Context, userID string) (*models.ProviderProfile, error)
	// UpdateProfile applies a partial profile update for the owning
	// provider and returns the result.
	UpdateProfile(ctx context.Context, userID string, update models.ProviderProfileUpdate) (*models.ProviderProfile, error)
}

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	Repo       providerRepo.ProviderProfileRepository
	Categories *scope.CachedCategorySource
}
