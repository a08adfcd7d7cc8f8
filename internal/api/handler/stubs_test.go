package handler

import (
	"context"
	"io"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	"github.com/manodeobra/professionals-api/internal/core/domain"
	"github.com/manodeobra/professionals-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn     func(ctx context.Context, in ports.RegisterInput) (*ports.ProfessionalUserView, error)
	loginFn        func(ctx context.Context, email, password string) (string, *ports.ProfessionalUserView, error)
	authenticateFn func(ctx context.Context, token string) (*domain.ProfessionalUser, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.ProfessionalUserView, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *ports.ProfessionalUserView, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Authenticate(ctx context.Context, token string) (*domain.ProfessionalUser, error) {
	return s.authenticateFn(ctx, token)
}

type stubUserService struct {
	getAllFn         func(ctx context.Context) ([]ports.ProfessionalUserView, error)
	getByIDFn        func(ctx context.Context, id string) (*ports.ProfessionalUserView, error)
	findByCategoryFn func(ctx context.Context, categoryID int) ([]ports.ProfessionalUserView, error)
	editFn           func(ctx context.Context, actor *domain.ProfessionalUser, in ports.EditProfileInput) (*ports.EditResult, error)
	disableFn        func(ctx context.Context, actor *domain.ProfessionalUser) (domain.Envelope, error)
	removeFn         func(ctx context.Context, actor *domain.ProfessionalUser) error
}

func (s *stubUserService) GetAll(ctx context.Context) ([]ports.ProfessionalUserView, error) {
	return s.getAllFn(ctx)
}

func (s *stubUserService) GetByID(ctx context.Context, id string) (*ports.ProfessionalUserView, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubUserService) FindByCategory(ctx context.Context, categoryID int) ([]ports.ProfessionalUserView, error) {
	return s.findByCategoryFn(ctx, categoryID)
}

func (s *stubUserService) Edit(ctx context.Context, actor *domain.ProfessionalUser, in ports.EditProfileInput) (*ports.EditResult, error) {
	return s.editFn(ctx, actor, in)
}

func (s *stubUserService) Disable(ctx context.Context, actor *domain.ProfessionalUser) (domain.Envelope, error) {
	return s.disableFn(ctx, actor)
}

func (s *stubUserService) Remove(ctx context.Context, actor *domain.ProfessionalUser) error {
	return s.removeFn(ctx, actor)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator("AR")
	return e
}

// serve runs h against a request built from method, target and body, and
// renders any returned error with echo's default error handler.
func serve(e *echo.Echo, h echo.HandlerFunc, method, target string, body io.Reader, setup func(c echo.Context)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if setup != nil {
		setup(c)
	}
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}
