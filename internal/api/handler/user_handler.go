package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tastebook/admin-api/internal/core/ports"
)

// UserHandler handles account administration and self-service profile
// requests.
type UserHandler struct {
	service ports.AccountService
}

func NewUserHandler(service ports.AccountService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /api/admin/users.
//
// @Summary      List all accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      500  {object}  errorResponse
// @Router       /api/admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// SetRole handles PUT /api/admin/users/:id/role.
//
// @Summary      Change an account's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateRoleRequest  true  "New role"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/users/{id}/role [put]
func (h *UserHandler) SetRole(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.SetRole(c.Request().Context(), c.Param("id"), req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Suspend handles PUT /api/admin/users/:id/suspend. There is no
// reactivate endpoint; the platform defines suspension as one-way.
//
// @Summary      Suspend an account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/users/{id}/suspend [put]
func (h *UserHandler) Suspend(c echo.Context) error {
	user, err := h.service.Suspend(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /api/admin/users/:id.
//
// @Summary      Delete an account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted successfully"})
}

// Profile handles GET /api/admin/profile.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	user, err := h.service.Profile(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PUT /api/admin/profile. Partial: only supplied
// fields overwrite. The credential is not updatable here.
//
// @Summary      Update own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Router       /api/admin/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var update ports.ProfileUpdate
	if req.Name != "" {
		update.Name = &req.Name
	}
	if req.Email != "" {
		update.Email = &req.Email
	}

	user, err := h.service.UpdateProfile(c.Request().Context(), id, update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ChangePassword handles PUT /api/admin/profile/password.
//
// @Summary      Change own password
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "Current and new password"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/admin/profile/password [put]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.ChangePassword(c.Request().Context(), id, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "password changed successfully"})
}
