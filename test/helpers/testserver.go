package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"chirpynosh_backend/internal/app"
	"chirpynosh_backend/internal/config"
	"chirpynosh_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TestServer runs the full HTTP stack against an in-memory database.
type TestServer struct {
	Server   *httptest.Server
	DB       *gorm.DB
	Services *services.ServiceContainer
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := NewTestConfig()
	db := NewTestDB(t)

	router, sc := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{Server: server, DB: db, Services: sc}
}

// NewTestConfig builds the minimal configuration the stack needs in tests.
func NewTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Worker.ExpirationCheckHours = 6
	cfg.Worker.ExpiringSoonDays = 3
	cfg.Worker.NotificationRetentionDays = 30
	return cfg
}

// SendRequest performs an HTTP request against the test server, attaching
// the bearer token when given, and returns the response with its body read.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return res, string(raw)
}

// Login authenticates an existing user through the API and returns the token.
func (ts *TestServer) Login(t *testing.T, email, password string) string {
	t.Helper()

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("login failed for %s: status %d, body %s", email, res.StatusCode, bodyStr)
	}

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	if err := json.Unmarshal([]byte(bodyStr), &loginResponse); err != nil {
		t.Fatalf("failed to parse login response: %v", err)
	}
	if loginResponse.Token == "" {
		t.Fatal("login returned an empty token")
	}
	return loginResponse.Token
}
