package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/manodeobra/professionals-api/internal/api/metrics"
	"github.com/manodeobra/professionals-api/internal/api/middleware"
	"github.com/manodeobra/professionals-api/internal/core/domain"
	"github.com/manodeobra/professionals-api/internal/core/ports"
)

// ProfessionalUserHandler handles HTTP requests for professional users.
type ProfessionalUserHandler struct {
	service ports.ProfessionalUserService
}

func NewProfessionalUserHandler(service ports.ProfessionalUserService) *ProfessionalUserHandler {
	return &ProfessionalUserHandler{service: service}
}

// List handles GET /api/professional_user/.
//
// @Summary      List professional users
// @Tags         professional_user
// @Produce      json
// @Success      200  {array}   ports.ProfessionalUserView
// @Failure      404  {object}  domain.Envelope
// @Failure      500  {object}  domain.Envelope
// @Router       /api/professional_user/ [get]
func (h *ProfessionalUserHandler) List(c echo.Context) error {
	users, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// GetByID handles GET /api/professional_user/:id.
//
// @Summary      Get a professional user by id
// @Tags         professional_user
// @Produce      json
// @Param        id   path      string  true  "Professional user id"
// @Success      200  {object}  ports.ProfessionalUserView
// @Failure      404  {object}  domain.Envelope
// @Failure      500  {object}  domain.Envelope
// @Router       /api/professional_user/{id} [get]
func (h *ProfessionalUserHandler) GetByID(c echo.Context) error {
	user, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// ListByCategory handles GET /api/professional_user/category/:category_id.
//
// @Summary      List professional users of a category
// @Tags         professional_user
// @Produce      json
// @Param        category_id  path      int  true  "Category id"
// @Success      200          {array}   ports.ProfessionalUserView
// @Failure      400          {object}  domain.Envelope
// @Failure      404          {object}  domain.Envelope
// @Failure      500          {object}  domain.Envelope
// @Router       /api/professional_user/category/{category_id} [get]
func (h *ProfessionalUserHandler) ListByCategory(c echo.Context) error {
	categoryID, err := strconv.Atoi(c.Param("category_id"))
	if err != nil {
		env := domain.Envelope{Error: true, Message: "category_id must be numeric", Code: http.StatusBadRequest}
		return c.JSON(http.StatusBadRequest, env)
	}

	users, err := h.service.FindByCategory(c.Request().Context(), categoryID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// Edit handles PUT /api/professional_user/.
//
// The refreshed session token is returned in the x-auth header.
//
// @Summary      Edit the authenticated user's profile
// @Tags         professional_user
// @Accept       json
// @Produce      json
// @Security     XAuth
// @Param        body  body      editProfileRequest  true  "Profile fields; email identifies the account"
// @Success      200   {object}  editProfileResponse
// @Header       200   {string}  x-auth  "Refreshed session token"
// @Failure      400   {object}  domain.Envelope
// @Failure      401   {object}  domain.Envelope
// @Failure      403   {object}  domain.Envelope
// @Failure      404   {object}  domain.Envelope
// @Failure      422   {object}  domain.Envelope
// @Failure      500   {object}  domain.Envelope
// @Router       /api/professional_user/ [put]
func (h *ProfessionalUserHandler) Edit(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req editProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.service.Edit(c.Request().Context(), actor, toEditInput(req))
	if err != nil {
		return respondError(c, err)
	}

	metrics.ProfessionalUserMutationsTotal.WithLabelValues("edit").Inc()
	metrics.TokensIssuedTotal.WithLabelValues("profile_edit").Inc()

	c.Response().Header().Set(middleware.HeaderAuthToken, result.Token)
	return c.JSON(http.StatusOK, toEditResponse(result))
}

// Disable handles DELETE /api/professional_user/disable.
//
// @Summary      Disable the authenticated user's account
// @Description  The record is kept; it stops being listed and can no longer log in.
// @Tags         professional_user
// @Produce      json
// @Security     XAuth
// @Success      200  {object}  domain.Envelope
// @Failure      401  {object}  domain.Envelope
// @Failure      404  {object}  domain.Envelope
// @Failure      500  {object}  domain.Envelope
// @Router       /api/professional_user/disable [delete]
func (h *ProfessionalUserHandler) Disable(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	env, err := h.service.Disable(c.Request().Context(), actor)
	if err != nil {
		return respondError(c, err)
	}

	metrics.ProfessionalUserMutationsTotal.WithLabelValues("disable").Inc()
	return c.JSON(env.Code, env)
}

// Delete handles DELETE /api/professional_user/.
//
// @Summary      Delete the authenticated user's account
// @Tags         professional_user
// @Security     XAuth
// @Success      204
// @Failure      401  {object}  domain.Envelope
// @Failure      404  {object}  domain.Envelope
// @Failure      500  {object}  domain.Envelope
// @Router       /api/professional_user/ [delete]
func (h *ProfessionalUserHandler) Delete(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), actor); err != nil {
		return respondError(c, err)
	}

	metrics.ProfessionalUserMutationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
