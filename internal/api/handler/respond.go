package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/manodeobra/professionals-api/internal/core/domain"
)

// respondError renders a domain failure as an envelope. Anything without a
// domain kind is returned so the central error handler logs it.
func respondError(c echo.Context, err error) error {
	if domain.KindOf(err) == domain.KindInternal {
		return err
	}
	env := domain.Fail(err)
	return c.JSON(env.Code, env)
}
