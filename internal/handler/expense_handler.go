package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jonmaso-hash/111-backend/internal/model"
	"github.com/jonmaso-hash/111-backend/internal/service"
)

// ExpenseHandler handles expense endpoints.
type ExpenseHandler struct {
	svc service.ExpenseService
}

// NewExpenseHandler creates a new expense handler.
func NewExpenseHandler(svc service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{svc: svc}
}

// CreateExpenseRequest represents an expense creation request. Required
// fields are pointers so that a present zero (amount: 0) is distinct from
// an absent field.
type CreateExpenseRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description" validate:"required"`
	Amount      *float64 `json:"amount" validate:"required"`
	Date        *string  `json:"date" validate:"required"`
	Category    *string  `json:"category" validate:"required"`
	UserID      *uint    `json:"user_id" validate:"required"`
}

// UpdateExpenseRequest represents a full-replace expense update. The owner
// id is read from the flat user_id field; the legacy nested user.id shape
// is still honored.
type UpdateExpenseRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description" validate:"required"`
	Amount      *float64 `json:"amount" validate:"required"`
	Date        *string  `json:"date" validate:"required"`
	Category    *string  `json:"category" validate:"required"`
	UserID      *uint    `json:"user_id"`
	User        *struct {
		ID *uint `json:"id"`
	} `json:"user"`
}

func (r *UpdateExpenseRequest) ownerID() *uint {
	if r.UserID != nil {
		return r.UserID
	}
	if r.User != nil {
		return r.User.ID
	}
	return nil
}

// CreateExpense godoc
// @Summary Create an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body CreateExpenseRequest true "Expense payload"
// @Success 201 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	var req CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, validationMessage(err))
	}

	expense := &model.Expense{
		Title:       req.Title,
		Description: *req.Description,
		Amount:      *req.Amount,
		Date:        *req.Date,
		Category:    *req.Category,
		UserID:      *req.UserID,
	}
	if _, err := h.svc.CreateExpense(c.Request().Context(), expense); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Message: "Expense created successfully",
	})
}

// ListExpenses godoc
// @Summary List expenses
// @Description Returns the summary projection (id, title, category, user_id).
// @Tags expenses
// @Produce json
// @Success 200 {object} Envelope
// @Router /expenses [get]
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	expenses, err := h.svc.ListExpenses(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	summaries := make([]model.ExpenseSummary, 0, len(expenses))
	for i := range expenses {
		summaries = append(summaries, expenses[i].Summary())
	}
	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Expenses retrieved successfully",
		Data:    summaries,
	})
}

// GetExpense godoc
// @Summary Get expense by id
// @Tags expenses
// @Produce json
// @Param id path int true "Expense ID"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondBadRequest(c, "invalid id")
	}
	expense, err := h.svc.GetExpense(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Expense retrieved successfully",
		Data:    expense,
	})
}

// UpdateExpense godoc
// @Summary Replace an expense
// @Description Full replace: every column is overwritten, an absent title becomes null.
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path int true "Expense ID"
// @Param request body UpdateExpenseRequest true "Expense payload"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondBadRequest(c, "invalid id")
	}
	if c.Request().ContentLength == 0 {
		return respondBadRequest(c, "no data found")
	}
	var req UpdateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, validationMessage(err))
	}
	ownerID := req.ownerID()
	if ownerID == nil {
		return respondBadRequest(c, "user_id is required")
	}

	expense := &model.Expense{
		Title:       req.Title,
		Description: *req.Description,
		Amount:      *req.Amount,
		Date:        *req.Date,
		Category:    *req.Category,
		UserID:      *ownerID,
	}
	if err := h.svc.ReplaceExpense(c.Request().Context(), id, expense); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Expense updated successfully",
	})
}
