package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/manodeobra/professionals-api/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain errors to the status code of their kind.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders every failure as the {"error", "message", "code"} envelope.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		env := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(env.Code)
			return
		}
		_ = c.JSON(env.Code, env)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) domain.Envelope {
	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := fmt.Sprintf("%v", he.Message)
		if he.Code >= http.StatusInternalServerError {
			log.Error().Err(err).Str("method", c.Request().Method).Str("path", c.Path()).Msg("http error")
		}
		return domain.Envelope{Error: true, Message: msg, Code: he.Code}
	}

	if domain.KindOf(err) != domain.KindInternal {
		return domain.Fail(err)
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")

	return domain.Fail(err)
}
