package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Nenad034/isplate-backend/internal/core/domain"
	"github.com/Nenad034/isplate-backend/internal/core/ports"
)

// UserHandler is the Admin-only account management surface. Password digests
// never appear in responses; the domain type excludes them from JSON.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type createUserRequest struct {
	ID       string      `json:"id"`
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=6"`
	Role     domain.Role `json:"role"`
}

type updateUserRequest struct {
	ID       string       `json:"id"`
	Name     *string      `json:"name"`
	Email    *string      `json:"email"`
	Password *string      `json:"password"`
	Role     *domain.Role `json:"role"`
}

// List returns all accounts; ?showDeleted=true includes soft-deleted ones.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      403  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	includeDeleted := c.QueryParam("showDeleted") == "true"

	users, err := h.users.List(c.Request().Context(), includeDeleted)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Create adds an account. Role defaults to Viewer when omitted; a duplicate
// email is a 409.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "Account details"
// @Success      201   {object}  recordResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.users.Create(c.Request().Context(), ports.CreateUserInput{
		ID:       req.ID,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}, actorName(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, recordResponse{Success: true, Record: user})
}

// Update applies partial changes to an account; omitted fields are left
// unchanged and a supplied password is re-hashed.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      updateUserRequest  true  "Changed fields"
// @Success      200   {object}  recordResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /users [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if req.ID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id is required"})
	}

	user, err := h.users.Update(c.Request().Context(), req.ID, ports.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}, actorName(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recordResponse{Success: true, Record: user})
}

// Delete soft-deletes an account by default; hardDelete=true removes it
// permanently.
//
// @Summary      Delete a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      deleteRequest  true  "Target id"
// @Success      200   {object}  recordResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /users [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	var req deleteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if req.ID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id is required"})
	}

	var err error
	if req.HardDelete {
		err = h.users.HardDelete(c.Request().Context(), req.ID, actorName(c))
	} else {
		err = h.users.SoftDelete(c.Request().Context(), req.ID, actorName(c))
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recordResponse{Success: true})
}

// Restore reactivates a soft-deleted account.
//
// @Summary      Restore a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      restoreRequest  true  "Target id"
// @Success      200   {object}  recordResponse
// @Failure      404   {object}  map[string]string
// @Router       /users [patch]
func (h *UserHandler) Restore(c echo.Context) error {
	var req restoreRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if req.ID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id is required"})
	}

	if err := h.users.Restore(c.Request().Context(), req.ID, actorName(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recordResponse{Success: true})
}
