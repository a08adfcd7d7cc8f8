package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/manodeobra/professionals-api/internal/api/middleware"
	"github.com/manodeobra/professionals-api/internal/core/domain"
)

// currentUser returns the user injected by the Auth middleware. A missing
// user means the route was mounted without the middleware; fail closed.
func currentUser(c echo.Context) (*domain.ProfessionalUser, error) {
	user, _ := c.Get(middleware.ContextKeyUser).(*domain.ProfessionalUser)
	if user == nil {
		if u, ok := domain.UserFrom(c.Request().Context()); ok {
			return u, nil
		}
		return nil, echo.NewHTTPError(http.StatusUnauthorized, domain.ErrMissingToken.Message)
	}
	return user, nil
}

// bindAndValidate decodes the JSON body into req and runs the registered
// validator. Decode failures are 400, rule violations 422.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}
