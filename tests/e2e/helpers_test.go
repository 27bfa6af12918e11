//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/reminders-backend/internal/adapter/postgres"
	reminderrepo "github.com/heartmarshall/reminders-backend/internal/adapter/postgres/reminder"
	"github.com/heartmarshall/reminders-backend/internal/adapter/postgres/testhelper"
	tokenrepo "github.com/heartmarshall/reminders-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/reminders-backend/internal/adapter/postgres/user"
	authpkg "github.com/heartmarshall/reminders-backend/internal/auth"
	"github.com/heartmarshall/reminders-backend/internal/config"
	authsvc "github.com/heartmarshall/reminders-backend/internal/service/auth"
	remindersvc "github.com/heartmarshall/reminders-backend/internal/service/reminder"
	"github.com/heartmarshall/reminders-backend/internal/transport/middleware"
	"github.com/heartmarshall/reminders-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	reminders := reminderrepo.New(pool)

	// Low hash cost keeps registration fast in tests.
	authCfg := config.AuthConfig{
		JWTSecret:        "test-secret-at-least-32-chars-long!!",
		JWTIssuer:        "test-issuer",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  720 * time.Hour,
		PasswordHashCost: 4,
	}
	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, txm, jwtMgr, authCfg)
	reminderService := remindersvc.NewService(logger, reminders)

	router := rest.NewRouter(rest.RouterConfig{
		Logger:    logger,
		Auth:      rest.NewAuthHandler(authService, logger),
		Reminders: rest.NewReminderHandler(reminderService, logger),
		Health:    rest.NewHealthHandler(pool, "test-version"),
		Middleware: []middleware.Middleware{
			middleware.RequestID,
			middleware.Recovery(logger),
			middleware.CORS(config.CORSConfig{
				AllowedOrigins:   "*",
				AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
				AllowedHeaders:   "Authorization,Content-Type",
				AllowCredentials: true,
				MaxAge:           86400,
			}),
			middleware.Auth(authService),
		},
	})

	srv := httptest.NewServer(router)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// ---------------------------------------------------------------------------
// HTTP helpers.
// ---------------------------------------------------------------------------

// doJSON sends a JSON request and returns the status code plus the decoded
// response body. A 204 or otherwise empty body yields a nil map.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "marshal request body")
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err, "create request")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err, "do request")
	defer resp.Body.Close()

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil && !errors.Is(err, io.EOF) {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, result
}

// credentials is what registerUser returns: enough to authenticate as the
// freshly created account in subsequent requests.
type credentials struct {
	Email        string
	Password     string
	AccessToken  string
	RefreshToken string
	UserID       string
}

// registerUser creates a unique account through the public API and returns
// its tokens.
func registerUser(t *testing.T, ts *testServer) credentials {
	t.Helper()

	email := fmt.Sprintf("e2e-%s@example.com", uuid.New().String()[:8])
	password := "correct horse battery staple"

	status, result := ts.doJSON(t, http.MethodPost, "/api/auth/register", map[string]any{
		"name":     "E2E User",
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusCreated, status, "register: %v", result)

	user, ok := result["user"].(map[string]any)
	require.True(t, ok, "expected user object in register response")

	return credentials{
		Email:        email,
		Password:     password,
		AccessToken:  result["accessToken"].(string),
		RefreshToken: result["refreshToken"].(string),
		UserID:       user["id"].(string),
	}
}

// createReminder creates a reminder through the API and returns its id.
func createReminder(t *testing.T, ts *testServer, token, title string) string {
	t.Helper()

	now := time.Now().UTC()
	status, result := ts.doJSON(t, http.MethodPost, "/api/reminders", map[string]any{
		"title":            title,
		"eventDate":        now.AddDate(0, 0, 7),
		"notificationDate": now.AddDate(0, 0, 6),
	}, token)
	require.Equal(t, http.StatusCreated, status, "create reminder: %v", result)

	id, ok := result["id"].(string)
	require.True(t, ok, "expected reminder id in response")
	return id
}
