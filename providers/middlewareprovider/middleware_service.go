package middlewareprovider

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"assetverse/models"
	"assetverse/providers"
	"assetverse/utils"
)

type contextKey string

const (
	userContextKey contextKey = "user_key"
	roleContextKey contextKey = "role_key"
)

const roleCacheTTL = 15 * time.Minute

type DefaultAuthMiddleware struct {
	db    *sqlx.DB
	cache providers.RedisProvider
}

func NewAuthMiddlewareService(db *sqlx.DB, cache providers.RedisProvider) providers.AuthMiddlewareService {
	return &DefaultAuthMiddleware{
		db:    db,
		cache: cache,
	}
}

func (a *DefaultAuthMiddleware) JWTAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accessToken := r.Header.Get("Authorization")

			if accessToken == "" {
				utils.RespondError(w, http.StatusUnauthorized, errors.New("missing access token"), "missing access token")
				return
			}

			email, role, err := ParseJWT(accessToken)
			if err != nil && strings.Contains(err.Error(), "invalid or expired token") {
				refreshToken := r.Header.Get("refresh_token")
				if refreshToken == "" {
					utils.RespondError(w, http.StatusUnauthorized, errors.New("missing refresh token"), "access token expired, and refresh token missing")
					return
				}
				email, err = ParseRefreshToken(refreshToken)
				if err != nil {
					utils.RespondError(w, http.StatusUnauthorized, err, "invalid or expired refresh token")
					return
				}

				role, err = a.resolveRole(r.Context(), email)
				if err != nil {
					utils.RespondError(w, http.StatusUnauthorized, err, "failed to resolve role for session")
					return
				}

				newAccessToken, err := GenerateJWT(email, role)
				if err != nil {
					utils.RespondError(w, http.StatusInternalServerError, err, "failed to generate access token")
					return
				}
				newRefreshToken, err := GenerateRefreshToken(email)
				if err != nil {
					utils.RespondError(w, http.StatusInternalServerError, err, "failed to generate refresh token")
					return
				}
				w.Header().Set("Authorization", newAccessToken)
				w.Header().Set("Refresh_token", newRefreshToken)
			} else if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, email)
			ctx = context.WithValue(ctx, roleContextKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (a *DefaultAuthMiddleware) RequireRole(allowedRoles ...models.Role) func(http.Handler) http.Handler {
	allowed := make(map[models.Role]bool)
	for _, role := range allowedRoles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, role, err := a.GetUserAndRoleFromContext(r)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if allowed[models.Role(role)] {
				next.ServeHTTP(w, r)
				return
			}
			http.Error(w, "forbidden", http.StatusForbidden)
		})
	}
}

func (a *DefaultAuthMiddleware) GetUserAndRoleFromContext(r *http.Request) (string, string, error) {
	email, ok := r.Context().Value(userContextKey).(string)
	if !ok {
		return "", "", errors.New("user email not found in context")
	}
	role, ok := r.Context().Value(roleContextKey).(string)
	if !ok {
		return "", "", errors.New("role not found in context")
	}
	return email, role, nil
}

// resolveRole answers from the per-identity cache first; the database is
// only hit on a miss. Entries are invalidated when a user record is
// created or its role-bearing fields change out-of-band.
func (a *DefaultAuthMiddleware) resolveRole(ctx context.Context, email string) (string, error) {
	if a.cache != nil {
		if role, err := a.cache.Get(ctx, RoleCacheKey(email)); err == nil && role != "" {
			return role, nil
		}
	}

	var role string
	err := a.db.GetContext(ctx, &role, `SELECT role FROM users WHERE email = $1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", errors.New("no user record for session identity")
		}
		return "", errors.Wrap(err, "failed to fetch role")
	}

	if a.cache != nil {
		_ = a.cache.Set(ctx, RoleCacheKey(email), role, roleCacheTTL)
	}
	return role, nil
}

func RoleCacheKey(email string) string {
	return "role:" + email
}
