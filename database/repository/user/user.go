package userRepo

import (
	"context"

	"fixitnow/models"
)

// UserRepository defines methods for user account data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// GetByID retrieves a user by their unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by their email. Returns nil, nil when
	// no such user exists.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// UpdateTokenHash stores the hash of the user's current auth token;
	// an empty hash revokes the session.
	UpdateTokenHash(ctx context.Context, id, tokenHash string) error
	// GetAll retrieves every user, password hashes excluded.
	GetAll(ctx context.Context) ([]models.User, error)
	// CountByRole returns the number of users per role.
	CountByRole(ctx context.Context) (map[models.Role]int64, error)
}
