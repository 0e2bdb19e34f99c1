package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthEndpoints(t *testing.T) {
	r, _ := setupRouter(t)

	register := map[string]any{
		"email":     "ana@uni.edu",
		"password":  "secret123",
		"firstName": "Ana",
		"lastName":  "Reyes",
	}

	t.Run("register", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/auth/register", "", register)
		require.Equal(t, http.StatusCreated, w.Code)

		data := decodeBody(t, w)["data"].(map[string]any)
		assert.Equal(t, "ana@uni.edu", data["email"])
		assert.Equal(t, "student", data["role"])
	})

	t.Run("duplicate email", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/auth/register", "", register)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("short password", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/auth/register", "", map[string]any{
			"email": "b@uni.edu", "password": "ab", "firstName": "B", "lastName": "C",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	var token string
	t.Run("login", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/auth/login", "", map[string]any{
			"email": "ana@uni.edu", "password": "secret123",
		})
		require.Equal(t, http.StatusOK, w.Code)
		token = decodeBody(t, w)["token"].(string)
		require.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/auth/login", "", map[string]any{
			"email": "ana@uni.edu", "password": "nope12345",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("me", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/auth/me", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		data := decodeBody(t, w)["data"].(map[string]any)
		assert.Equal(t, "ana@uni.edu", data["email"])
	})

	t.Run("me without token", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("update profile", func(t *testing.T) {
		w := doJSON(r, http.MethodPatch, "/api/auth/me", token, map[string]any{
			"phoneNumber": "09170000000",
		})
		require.Equal(t, http.StatusOK, w.Code)
		data := decodeBody(t, w)["data"].(map[string]any)
		assert.Equal(t, "09170000000", data["phoneNumber"])
	})

	t.Run("forgot password never reveals accounts", func(t *testing.T) {
		for _, email := range []string{"ana@uni.edu", "ghost@uni.edu"} {
			w := doJSON(r, http.MethodPost, "/api/auth/forgot-password", "", map[string]any{"email": email})
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})
}
