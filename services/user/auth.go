package user

import (
	"context"
	"time"

	"fixitnow/config"
	"fixitnow/models"
	"fixitnow/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates an account and signs the new user in. Admin accounts
// are seeded out of band; self-registration is limited to customers and
// providers. A provider gets an empty profile so the scoping layer has
// something to read before the provider declares any categories.
func (s *DefaultUserService) Register(ctx context.Context, req models.UserRegistration) (*models.AuthResponse, error) {
	if req.Role != models.RoleCustomer && req.Role != models.RoleProvider {
		return nil, utils.ValidationError("role must be %s or %s", models.RoleCustomer, models.RoleProvider)
	}

	existing, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, utils.ConflictError("a user with email %s already exists", req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.WrapError(utils.KindValidation, err, "failed to hash password")
	}

	newUser := &models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Location:     req.Location,
	}
	if err := s.Repo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	if req.Role == models.RoleProvider {
		profile := &models.ProviderProfile{UserID: newUser.ID, Available: true}
		if err := s.Providers.Create(ctx, profile); err != nil {
			utils.GetLogger().Error("Register: failed to create provider profile",
				zap.String("userID", newUser.ID), zap.Error(err))
			return nil, err
		}
	}

	return s.issueToken(ctx, newUser)
}

// Authenticate verifies credentials and issues a fresh token.
func (s *DefaultUserService) Authenticate(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(ctx, creds.Email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, err
	}
	if userRec == nil {
		return nil, utils.UnauthenticatedError("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, utils.UnauthenticatedError("invalid email or password")
	}

	return s.issueToken(ctx, userRec)
}

// issueToken signs a JWT for the user and records its hash in Redis and
// on the user record so the auth middleware can verify it was not
// revoked.
func (s *DefaultUserService) issueToken(ctx context.Context, userRec *models.User) (*models.AuthResponse, error) {
	ttlHours := config.AppConfig.TokenTTLHours
	if ttlHours <= 0 {
		ttlHours = 72
	}
	ttl := time.Duration(ttlHours) * time.Hour
	token, err := utils.GenerateToken(userRec.ID, string(userRec.Role), ttl)
	if err != nil {
		utils.GetLogger().Error("issueToken: failed to sign token", zap.Error(err))
		return nil, err
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateTokenHash(ctx, userRec.ID, tokenHash); err != nil {
		return nil, err
	}
	if s.AuthCache != nil {
		cacheKey := utils.AuthCachePrefix + userRec.ID
		if err := s.AuthCache.Set(ctx, cacheKey, tokenHash, time.Hour).Err(); err != nil {
			utils.GetLogger().Warn("issueToken: failed to cache token hash", zap.Error(err))
		}
	}

	userRec.TokenHash = tokenHash
	return &models.AuthResponse{Token: token, User: *userRec}, nil
}

// RevokeToken invalidates the user's current token in both the cache
// and the user record.
func (s *DefaultUserService) RevokeToken(ctx context.Context, userID string) error {
	if s.AuthCache != nil {
		if err := s.AuthCache.Del(ctx, utils.AuthCachePrefix+userID).Err(); err != nil {
			utils.GetLogger().Warn("RevokeToken: failed to clear cached token hash", zap.Error(err))
		}
	}
	return s.Repo.UpdateTokenHash(ctx, userID, "")
}
