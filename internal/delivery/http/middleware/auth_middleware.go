// Package middleware contains the HTTP middleware of the delivery layer.
package middleware

import (
	"strings"

	"directory/internal/delivery/http/response"
	"directory/internal/domain/entity"
	"directory/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// identityKey is the echo.Context key the authenticated identity is stored under.
const identityKey = "identity"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// GetIdentity returns the session identity set by Authenticate. Handlers on
// unauthenticated routes receive the zero identity.
func GetIdentity(c echo.Context) entity.SessionIdentity {
	if identity, ok := c.Get(identityKey).(entity.SessionIdentity); ok {
		return identity
	}

	return entity.SessionIdentity{}
}

// Authenticate validates the Bearer access token and stores the session
// identity on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		c.Set(identityKey, entity.SessionIdentity{
			UserID:        claims.UserID,
			Roles:         entity.RolesFromStrings(claims.Roles),
			Authenticated: true,
		})

		return next(c)
	}
}

// RequireClaimRole rejects callers whose role set cannot enter the claim
// workflow. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireClaimRole(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := GetIdentity(c)
		if !identity.Authenticated || !identity.Roles.CanClaim() {
			return response.Forbidden(c, "CLAIM_NOT_ALLOWED", "Permission denied: a business owner account is required")
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := GetIdentity(c)
			if !identity.Roles.Contains(requiredRole) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}
