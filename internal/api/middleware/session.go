package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopsmith/ecommerce-api/internal/api/metrics"
	"github.com/shopsmith/ecommerce-api/internal/core/access"
	"github.com/shopsmith/ecommerce-api/internal/core/domain"
	"github.com/shopsmith/ecommerce-api/internal/core/token"
)

// SessionCookieName is the cookie carrying the identity token.
const SessionCookieName = "token"

const identityContextKey = "identity"

// errNoToken distinguishes "no cookie at all" from an undecodable token so
// the mandatory resolver can answer with the right denial reason.
var errNoToken = errors.New("no token provided")

// UserDirectory is the lookup the resolver needs: user by id, password hash
// excluded from the projection.
type UserDirectory interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// RequireSession resolves the session cookie and denies the request when no
// valid identity can be established. A directory outage is not an
// authentication failure and surfaces as a server error instead.
func RequireSession(codec *token.Codec, directory UserDirectory) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := resolve(c, codec, directory)
			if err != nil {
				if errors.Is(err, errNoToken) {
					metrics.SessionsResolvedTotal.WithLabelValues("denied").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
				}
				if errors.Is(err, domain.ErrInvalidToken) {
					metrics.SessionsResolvedTotal.WithLabelValues("denied").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
				}
				return err
			}

			metrics.SessionsResolvedTotal.WithLabelValues("present").Inc()
			c.Set(identityContextKey, identity)
			return next(c)
		}
	}
}

// OptionalSession runs the same resolution but never denies: any
// authentication failure attaches the absent identity and the request
// proceeds. Infrastructure failures still abort the request.
func OptionalSession(codec *token.Codec, directory UserDirectory) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := resolve(c, codec, directory)
			if err != nil {
				if !isAuthFailure(err) {
					return err
				}
				identity = access.Absent
			}

			if identity.Present() {
				metrics.SessionsResolvedTotal.WithLabelValues("present").Inc()
			} else {
				metrics.SessionsResolvedTotal.WithLabelValues("absent").Inc()
			}
			c.Set(identityContextKey, identity)
			return next(c)
		}
	}
}

// resolve is the single resolution routine shared by both modes: cookie →
// decode → directory lookup. A user deleted after token issuance resolves the
// same way as a bad token.
func resolve(c echo.Context, codec *token.Codec, directory UserDirectory) (access.Identity, error) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return access.Absent, errNoToken
	}

	claims, err := codec.Decode(cookie.Value)
	if err != nil {
		return access.Absent, domain.ErrInvalidToken
	}

	user, err := directory.FindByID(c.Request().Context(), claims.SubjectID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return access.Absent, domain.ErrInvalidToken
		}
		return access.Absent, fmt.Errorf("resolve session: %w", err)
	}

	return access.Identity{User: user}, nil
}

func isAuthFailure(err error) bool {
	return errors.Is(err, errNoToken) || errors.Is(err, domain.ErrInvalidToken)
}

// CurrentIdentity returns the identity attached by the session middleware,
// or the absent identity when none was attached.
func CurrentIdentity(c echo.Context) access.Identity {
	identity, _ := c.Get(identityContextKey).(access.Identity)
	return identity
}
