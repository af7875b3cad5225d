package provider

import (
	"context"

	"fixitnow/models"
	"fixitnow/utils"

	"go.uber.org/zap"
)

// GetProfile returns the provider's profile.
func (s *DefaultProviderService) GetProfile(ctx context.Context, userID string) (*models.ProviderProfile, error) {
	return s.Repo.GetByUserID(ctx, userID)
}

// UpdateProfile applies a partial update for the owning provider. A
// category update invalidates the scope cache so eligibility checks see
// the new set promptly.
func (s *DefaultProviderService) UpdateProfile(ctx context.Context, userID string, update models.ProviderProfileUpdate) (*models.ProviderProfile, error) {
	if update.Categories != nil {
		for _, c := range *update.Categories {
			if !models.ValidServiceCategory(c) {
				return nil, utils.ValidationError("unknown service category %q", c)
			}
		}
	}
	if update.HourlyRate != nil && *update.HourlyRate < 0 {
		return nil, utils.ValidationError("hourlyRate must not be negative")
	}

	profile, err := s.Repo.Update(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	if update.Categories != nil && s.Categories != nil {
		s.Categories.Invalidate(ctx, userID)
	}

	utils.GetLogger().Info("provider profile updated", zap.String("userID", userID))
	return profile, nil
}
