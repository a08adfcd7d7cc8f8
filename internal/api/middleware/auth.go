package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/manodeobra/professionals-api/internal/api/metrics"
	"github.com/manodeobra/professionals-api/internal/core/domain"
	"github.com/manodeobra/professionals-api/internal/core/ports"
)

// HeaderAuthToken carries the session token on requests and on the login and
// profile edit responses.
const HeaderAuthToken = "x-auth"

const (
	ContextKeyUser   = "user"
	ContextKeyUserID = "user_id"
)

// Auth resolves the x-auth token to a user and injects it into the context.
// Any failure ends the request; next is never called.
func Auth(authenticator ports.Authenticator, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := strings.TrimSpace(c.Request().Header.Get(HeaderAuthToken))
			if token == "" {
				return reject(c, log, domain.ErrMissingToken)
			}

			req := c.Request()
			user, err := authenticator.Authenticate(req.Context(), token)
			if err != nil {
				return reject(c, log, err)
			}

			c.Set(ContextKeyUser, user)
			c.Set(ContextKeyUserID, user.ID)
			c.SetRequest(req.WithContext(domain.WithUser(req.Context(), user)))

			return next(c)
		}
	}
}

func reject(c echo.Context, log zerolog.Logger, err error) error {
	reason := failureReason(err)
	metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()

	kind := domain.KindOf(err)
	if kind != domain.KindUnauthorized && kind != domain.KindForbidden {
		// Store outage or similar: surface as 500 through the error handler.
		log.Error().Err(err).Str("path", c.Path()).Msg("auth: resolve token")
		return err
	}

	log.Debug().Str("reason", reason).Str("path", c.Path()).Msg("auth: request rejected")
	return echo.NewHTTPError(kind.HTTPStatus(), err.Error())
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingToken):
		return "missing_token"
	case errors.Is(err, domain.ErrInvalidToken):
		return "invalid_token"
	case errors.Is(err, domain.ErrUserGone):
		return "user_gone"
	case errors.Is(err, domain.ErrAccountDisabled):
		return "account_disabled"
	default:
		return "internal"
	}
}
