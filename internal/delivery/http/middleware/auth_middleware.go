package middleware

import (
	"strings"

	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/delivery/http/response"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc  service.TokenService
	txManager repository.TransactionManager
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, txManager repository.TransactionManager) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, txManager: txManager}
}

// Authenticate validates the access token and resolves it to a live user
// account. A token whose account has since been deleted or deactivated is
// rejected the same way as a bad token, always with a 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		ctx := c.Request().Context()

		active := false
		err = m.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			user, err := repoFactory.UserRepo().FindByID(ctx, claims.UserID)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					return nil
				}

				return errors.Wrap(err, "failed to resolve token user")
			}
			active = user.State.Active()

			return nil
		})
		if err != nil {
			return errors.WithStack(err)
		}
		if !active {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetActorID(c, claims.UserID)

		return next(c)
	}
}
