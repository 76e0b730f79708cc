package handler

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/jonmaso-hash/111-backend/internal/errors"
)

// Envelope is the JSON wrapper shared by all endpoints.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Code    string      `json:"code,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respondError(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, Envelope{
		Success: false,
		Message: httpErr.Message,
		Code:    httpErr.Code,
	})
}

func respondBadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Envelope{
		Success: false,
		Message: message,
		Code:    "INVALID_REQUEST",
	})
}

// validationMessage flattens validator errors into the field-list message
// the API contract promises, e.g. "description, amount and user_id are required".
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return err.Error()
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	switch len(fields) {
	case 1:
		return fields[0] + " is required"
	default:
		return strings.Join(fields[:len(fields)-1], ", ") + " and " + fields[len(fields)-1] + " are required"
	}
}
