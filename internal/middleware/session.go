package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Eursukkul/events-portal/internal/auth"
	"github.com/Eursukkul/events-portal/internal/models"
	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

type UserLookup interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

type TokenVerifier interface {
	Verify(token string) (uint, error)
}

// Session attaches the caller's identity to the request when a valid session
// token is present. It never rejects a request; handlers decide what an
// anonymous caller may do.
func Session(verifier TokenVerifier, users UserLookup, cookieName string, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := sessionToken(c, cookieName)
			if token == "" {
				return next(c)
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				logger.Debug("ignoring session token", "error", err)
				return next(c)
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				logger.Debug("session user not found", "user_id", userID, "error", err)
				return next(c)
			}

			c.Set(identityKey, &auth.Identity{
				UserID:      user.ID,
				DisplayName: user.DisplayName(),
				IsStaff:     user.IsStaff,
			})
			return next(c)
		}
	}
}

// IdentityFrom returns nil for anonymous requests.
func IdentityFrom(c echo.Context) *auth.Identity {
	id, _ := c.Get(identityKey).(*auth.Identity)
	return id
}

func SetIdentity(c echo.Context, id *auth.Identity) {
	c.Set(identityKey, id)
}

func RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := IdentityFrom(c)
		if id == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}
		if !id.IsStaff {
			return echo.NewHTTPError(http.StatusForbidden, "staff access required")
		}
		return next(c)
	}
}

func sessionToken(c echo.Context, cookieName string) string {
	if h := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie.Value
	}
	return ""
}
