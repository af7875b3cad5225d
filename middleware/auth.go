package middleware

import (
	"net/http"
	"strings"
	"time"

	userRepo "fixitnow/database/repository/user"
	"fixitnow/models"
	"fixitnow/services/scope"
	"fixitnow/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const identityKey = "identity"

// JWTAuthMiddleware resolves the caller's (userID, role) from the
// bearer token and stores it in the request context. The token hash is
// checked against the auth cache first, with a fallback to the user
// record, so a revoked token stops working even while unexpired.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthenticated(c, "missing or invalid Authorization header")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil {
			abortUnauthenticated(c, "invalid token")
			return
		}
		if !models.ValidRole(models.Role(role)) {
			abortUnauthenticated(c, "invalid token")
			return
		}

		computedHash := utils.HashToken(tokenString)
		ctx := c.Request.Context()
		cacheKey := utils.AuthCachePrefix + userID

		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedHash != computedHash {
					abortUnauthenticated(c, "token revoked")
					return
				}
				_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
				setIdentity(c, userID, models.Role(role))
				return
			}
			if err != redis.Nil {
				utils.GetLogger().Warn("auth cache lookup failed, falling back to DB", zap.Error(err))
			}
		}

		// Cache miss: verify against the user record.
		usr, err := users.GetByID(ctx, userID)
		if err != nil || usr == nil {
			abortUnauthenticated(c, "authentication error")
			return
		}
		if usr.TokenHash == "" || usr.TokenHash != computedHash {
			abortUnauthenticated(c, "token revoked")
			return
		}
		if usr.Role != models.Role(role) {
			abortUnauthenticated(c, "invalid token")
			return
		}

		if authCache != nil {
			_ = authCache.Set(ctx, cacheKey, computedHash, time.Hour).Err()
		}
		setIdentity(c, userID, usr.Role)
	}
}

func setIdentity(c *gin.Context, userID string, role models.Role) {
	c.Set(identityKey, scope.Identity{ID: userID, Role: role})
	c.Next()
}

func abortUnauthenticated(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

// CallerIdentity retrieves the identity set by JWTAuthMiddleware.
func CallerIdentity(c *gin.Context) (scope.Identity, bool) {
	val, exists := c.Get(identityKey)
	if !exists {
		return scope.Identity{}, false
	}
	identity, ok := val.(scope.Identity)
	return identity, ok
}
