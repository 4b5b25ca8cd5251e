package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"healthcare-appointment-api/internal/domain/entity"
	"healthcare-appointment-api/internal/domain/repository"
	"healthcare-appointment-api/pkg/jwt"
	"healthcare-appointment-api/pkg/response"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type contextKey string

const (
	PrincipalKey contextKey = "principal"
	TokenIDKey   contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	redisClient *redis.Client
	db          *gorm.DB
	userRepo    repository.UserRepository
}

func NewAuthMiddleware(jwtService *jwt.JWTService, redisClient *redis.Client, db *gorm.DB, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		redisClient: redisClient,
		db:          db,
		userRepo:    userRepo,
	}
}

// Authenticate resolves the bearer credential to a principal. The user record
// is re-fetched from the database on every request instead of trusting claims
// embedded in the token, so role changes and deletions take effect on the
// next request.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		// Check if token exists in Redis (not revoked)
		tokenKey := fmt.Sprintf("access_token:%s:%s", claims.UserID.String(), claims.TokenID)
		exists, err := m.redisClient.Exists(r.Context(), tokenKey).Result()
		if err != nil {
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if exists == 0 {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		// The credential verified but the identity record may be gone
		user, err := m.userRepo.FindByID(m.db.WithContext(r.Context()), claims.UserID)
		if err != nil {
			response.InternalServerError(w, "Failed to resolve user")
			return
		}
		if user == nil {
			response.Unauthorized(w, "User not found")
			return
		}

		ctx := context.WithValue(r.Context(), PrincipalKey, user)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetPrincipalFromContext extracts the authenticated user from context
func GetPrincipalFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(PrincipalKey).(*entity.User)
	return user, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
