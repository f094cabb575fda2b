package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopsmith/ecommerce-api/internal/api/metrics"
	"github.com/shopsmith/ecommerce-api/internal/core/access"
	"github.com/shopsmith/ecommerce-api/internal/core/domain"
)

// RequireRole fences a route to one role. It must run after RequireSession;
// against an absent identity it denies with 401 rather than 403, so the two
// failure kinds stay distinct.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := access.RequireRole(CurrentIdentity(c), role)
			switch {
			case err == nil:
				return next(c)
			case errors.Is(err, domain.ErrUnauthenticated):
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			default:
				metrics.AccessDeniedTotal.WithLabelValues("role").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
		}
	}
}
