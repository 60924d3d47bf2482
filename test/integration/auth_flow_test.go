package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"chirpynosh_backend/internal/models"
	"chirpynosh_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthFlow(t *testing.T) {
	ts := helpers.NewTestServer(t)

	t.Run("register, login, me", func(t *testing.T) {
		res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
			"email":    "jane@example.com",
			"password": "password123",
			"name":     "Jane Doe",
			"role":     "recipient",
		})
		require.Equal(t, http.StatusCreated, res.StatusCode, "Body: "+bodyStr)

		var registered struct {
			User struct {
				ID   string `json:"id"`
				Role string `json:"role"`
			} `json:"user"`
			Token string `json:"access_token"`
		}
		require.NoError(t, json.Unmarshal([]byte(bodyStr), &registered))
		assert.Equal(t, "recipient", registered.User.Role)
		assert.NotEmpty(t, registered.Token)

		token := ts.Login(t, "jane@example.com", "password123")

		res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", token, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, "Body: "+bodyStr)
		assert.Contains(t, bodyStr, "jane@example.com")
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
			"email":    "jane@example.com",
			"password": "password123",
			"name":     "Second Jane",
		})
		assert.Equal(t, http.StatusConflict, res.StatusCode, "Body: "+bodyStr)
	})

	t.Run("admin role cannot be self-registered", func(t *testing.T) {
		res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
			"email":    "sneaky@example.com",
			"password": "password123",
			"name":     "Sneaky",
			"role":     "admin",
		})
		// The shape validator only admits partner/recipient/public.
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, "Body: "+bodyStr)
	})

	t.Run("wrong password fails", func(t *testing.T) {
		res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
			"email":    "jane@example.com",
			"password": "not-the-password",
		})
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode, "Body: "+bodyStr)
	})

	t.Run("me requires a token", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})

	t.Run("tampered token is rejected", func(t *testing.T) {
		helpers.CreateUser(t, ts.DB, &models.User{
			Email:        "victim@example.com",
			PasswordHash: "password123",
			Name:         "Victim",
			Role:         models.UserRolePartner,
		})
		token := ts.Login(t, "victim@example.com", "password123")

		res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", token+"x", nil)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})
}
