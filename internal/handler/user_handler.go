package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jonmaso-hash/111-backend/internal/service"
)

// UserHandler handles user endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// RegisterRequest represents a registration request. Passwords are not
// accepted here; the column stays empty until a later update sets it.
type RegisterRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

// UpdateUserRequest represents a partial user update. Absent fields keep
// their stored value.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Register godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "User payload"
// @Success 201 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 409 {object} Envelope
// @Router /register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, validationMessage(err))
	}

	if _, err := h.svc.Register(c.Request().Context(), req.Name, req.Email); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Message: "User registered successfully",
	})
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} Envelope
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Users retrieved successfully",
		Data:    users,
	})
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondBadRequest(c, "invalid id")
	}
	user, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: user})
}

// UpdateUser godoc
// @Summary Update user fields
// @Description Partial update: absent fields keep their stored value.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "Fields to change"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Failure 409 {object} Envelope
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondBadRequest(c, "invalid id")
	}
	if c.Request().ContentLength == 0 {
		return respondBadRequest(c, "invalid JSON body")
	}
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "invalid JSON body")
	}

	upd := service.UserUpdate{Name: req.Name, Email: req.Email, Password: req.Password}
	if err := h.svc.UpdateUser(c.Request().Context(), id, upd); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "User updated successfully",
	})
}

// DeleteUser godoc
// @Summary Delete user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Failure 409 {object} Envelope
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondBadRequest(c, "invalid id")
	}
	if err := h.svc.DeleteUser(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "User deleted successfully",
	})
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
