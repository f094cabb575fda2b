package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopsmith/ecommerce-api/internal/api/middleware"
	"github.com/shopsmith/ecommerce-api/internal/core/access"
)

// requireIdentity returns the identity attached by the session middleware and
// fast-fails with 401 when it is absent. Routes behind RequireSession always
// carry one; this guards against a route wired without the middleware.
func requireIdentity(c echo.Context) (access.Identity, error) {
	identity := middleware.CurrentIdentity(c)
	if !identity.Present() {
		return access.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
