package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonmaso-hash/111-backend/internal/model"
)

func TestHealth(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(t, e, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", decodeBody(t, rec)["status"])
}

func TestRegisterAndListUsers(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/register", map[string]interface{}{
		"name":  "Ann",
		"email": "a@x.com",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "User registered successfully", body["message"])

	// Duplicate email is a conflict, not a crash.
	rec = doJSON(t, e, http.MethodPost, "/api/register", map[string]interface{}{
		"name":  "Other Ann",
		"email": "a@x.com",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["success"])

	rec = doJSON(t, e, http.MethodGet, "/api/users", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	users, ok := body["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, users, 1)

	user := users[0].(map[string]interface{})
	assert.Equal(t, "Ann", user["name"])
	assert.Equal(t, "a@x.com", user["email"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "created_at")
}

func TestRegisterValidation(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/register", map[string]interface{}{
		"name": "Ann",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "email")
}

func TestGetUser(t *testing.T) {
	e, _ := newTestServer(t)
	registerUser(t, e, "Ann", "a@x.com")

	rec := doJSON(t, e, http.MethodGet, "/api/users/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "Ann", data["name"])

	rec = doJSON(t, e, http.MethodGet, "/api/users/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "User not found", body["message"])

	rec = doJSON(t, e, http.MethodGet, "/api/users/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateUserCoalesce(t *testing.T) {
	e, gormDB := newTestServer(t)
	registerUser(t, e, "Ann", "a@x.com")

	// Empty object: nothing changes, still a success.
	rec := doJSON(t, e, http.MethodPut, "/api/users/1", map[string]interface{}{})
	assert.Equal(t, http.StatusOK, rec.Code)

	var stored model.User
	require.NoError(t, gormDB.First(&stored, 1).Error)
	assert.Equal(t, "Ann", stored.Name)
	assert.Equal(t, "a@x.com", stored.Email)

	// Only email present: name and password keep their stored values.
	rec = doJSON(t, e, http.MethodPut, "/api/users/1", map[string]interface{}{
		"email": "new@x.com",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, gormDB.First(&stored, 1).Error)
	assert.Equal(t, "Ann", stored.Name)
	assert.Equal(t, "new@x.com", stored.Email)
	assert.Equal(t, "", stored.Password)

	rec = doJSON(t, e, http.MethodPut, "/api/users/1", map[string]interface{}{
		"password": "secret",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, gormDB.First(&stored, 1).Error)
	assert.Equal(t, "Ann", stored.Name)
	assert.Equal(t, "new@x.com", stored.Email)
	assert.Equal(t, "secret", stored.Password)
}

func TestUpdateUserErrors(t *testing.T) {
	e, _ := newTestServer(t)
	registerUser(t, e, "Ann", "a@x.com")
	registerUser(t, e, "Bea", "b@x.com")

	// No body at all.
	rec := doJSON(t, e, http.MethodPut, "/api/users/1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, e, http.MethodPut, "/api/users/999", map[string]interface{}{"name": "X"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["success"])

	// Email uniqueness holds across updates too.
	rec = doJSON(t, e, http.MethodPut, "/api/users/2", map[string]interface{}{"email": "a@x.com"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteUser(t *testing.T) {
	e, _ := newTestServer(t)
	registerUser(t, e, "Ann", "a@x.com")

	rec := doJSON(t, e, http.MethodDelete, "/api/users/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["success"])

	rec = doJSON(t, e, http.MethodGet, "/api/users/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, e, http.MethodDelete, "/api/users/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["success"])
}

func TestDeleteUserWithExpenses(t *testing.T) {
	e, _ := newTestServer(t)
	registerUser(t, e, "Ann", "a@x.com")

	rec := doJSON(t, e, http.MethodPost, "/api/expenses", map[string]interface{}{
		"description": "coffee",
		"amount":      3.5,
		"date":        "2024-01-01",
		"category":    "food",
		"user_id":     1,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, e, http.MethodDelete, "/api/users/1", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["success"])
}
