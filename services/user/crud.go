package user

import (
	"context"

	"fixitnow/models"
)

// GetUserByID returns the user record.
func (s *DefaultUserService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	return s.Repo.GetByID(ctx, userID)
}

// GetAllUsers returns every user, sensitive fields stripped by the repo.
func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAll(ctx)
}

// CountByRole returns user counts per role.
func (s *DefaultUserService) CountByRole(ctx context.Context) (map[models.Role]int64, error) {
	return s.Repo.CountByRole(ctx)
}
