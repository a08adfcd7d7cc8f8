package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/manodeobra/professionals-api/internal/api/metrics"
	"github.com/manodeobra/professionals-api/internal/api/middleware"
	"github.com/manodeobra/professionals-api/internal/core/domain"
	"github.com/manodeobra/professionals-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup creates a new professional user account.
//
// @Summary      Register a professional user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account and profile details"
// @Success      201   {object}  ports.ProfessionalUserView
// @Failure      400   {object}  domain.Envelope
// @Failure      409   {object}  domain.Envelope
// @Failure      422   {object}  domain.Envelope
// @Failure      500   {object}  domain.Envelope
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), toRegisterInput(req))
	if err != nil {
		return respondError(c, err)
	}

	metrics.ProfessionalUserMutationsTotal.WithLabelValues("signup").Inc()
	return c.JSON(http.StatusCreated, user)
}

// Login authenticates a professional user and returns a session token, both
// in the body and in the x-auth header.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Header       200   {string}  x-auth  "Session token"
// @Failure      400   {object}  domain.Envelope
// @Failure      401   {object}  domain.Envelope
// @Failure      403   {object}  domain.Envelope
// @Failure      422   {object}  domain.Envelope
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return respondError(c, err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.WithLabelValues("login").Inc()

	c.Response().Header().Set(middleware.HeaderAuthToken, token)
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrAccountDisabled):
		return "disabled"
	default:
		return "error"
	}
}
