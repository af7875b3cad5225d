package user

import (
	"context"

	providerRepo "fixitnow/database/repository/provider"
	userRepo "fixitnow/database/repository/user"
	"fixitnow/models"

	"github.com/go-redis/redis/v8"
)

// UserService is the authentication collaborator: it owns accounts,
// credentials, and token issuance. The booking core only ever sees the
// (userID, role) identity this service resolves.
type UserService interface {
	// Register creates an account and signs the new user in.
	Register(ctx context.Context, req models.UserRegistration) (*models.AuthResponse, error)
	// Authenticate verifies credentials and issues a fresh token.
	Authenticate(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	// RevokeToken invalidates the user's current token.
	RevokeToken(ctx context.Context, userID string) error

	// GetUserByID returns the user record, sensitive fields excluded on
	// serialization.
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	// GetAllUsers returns every user. Admin surface.
	GetAllUsers(ctx context.Context) ([]models.User, error)
	// CountByRole returns user counts per role. Admin surface.
	CountByRole(ctx context.Context) (map[models.Role]int64, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	Providers providerRepo.ProviderProfileRepository
	AuthCache *redis.Client
}
