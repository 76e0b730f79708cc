package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jonmaso-hash/111-backend/internal/db"
	"github.com/jonmaso-hash/111-backend/internal/handler"
	"github.com/jonmaso-hash/111-backend/internal/model"
	"github.com/jonmaso-hash/111-backend/internal/repository"
	"github.com/jonmaso-hash/111-backend/internal/router"
	"github.com/jonmaso-hash/111-backend/internal/service"
)

// newTestServer wires the full stack over an in-memory sqlite store,
// without a cache.
func newTestServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()

	gormDB, err := db.NewSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&model.User{}, &model.Expense{}))

	userRepo := repository.NewUserRepository(gormDB)
	expenseRepo := repository.NewExpenseRepository(gormDB)
	userService := service.NewUserService(userRepo, nil)
	expenseService := service.NewExpenseService(expenseRepo, userRepo, nil)

	e := echo.New()
	router.Register(e, handler.NewUserHandler(userService), handler.NewExpenseHandler(expenseService))
	return e, gormDB
}

// doJSON performs a request against the test server. A nil body sends no
// request body at all.
func doJSON(t *testing.T, e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func registerUser(t *testing.T, e *echo.Echo, name, email string) {
	t.Helper()

	rec := doJSON(t, e, "POST", "/api/register", map[string]interface{}{
		"name":  name,
		"email": email,
	})
	require.Equal(t, 201, rec.Code)
}
