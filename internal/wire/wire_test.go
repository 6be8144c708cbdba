package wire

import (
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"legal-assistant/internal/data/entity"
	"legal-assistant/internal/data/repository"
	"legal-assistant/internal/usecase"
	"legal-assistant/pkg/inference"
	"legal-assistant/pkg/mailer"
	"legal-assistant/pkg/token"
	"legal-assistant/pkg/utils"
)

// newTestApp builds the full router over the in-memory store with an
// activated admin and assistant already present.
func newTestApp(t *testing.T, inferenceURL string) *App {
	t.Helper()

	cfg := &utils.Config{
		App: utils.AppConfig{
			Name:    "legal-assistant",
			BaseURL: "http://localhost:8000",
		},
		Storage: utils.StorageConfig{Driver: "memory"},
		Auth: utils.AuthConfig{
			SessionSecret:         "wire-test-session-secret",
			SessionExpiryHours:    1,
			ActivationSecret:      "wire-test-activation-secret",
			ActivationExpiryHours: 1,
			AdminUsername:         "admin",
			AdminPassword:         "admin-password",
		},
		Inference: utils.InferenceConfig{
			Model:          "mistral",
			MaxPromptChars: 24000,
		},
	}

	repo, err := repository.NewRepository(cfg, nil, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, usecase.EnsureDefaultAdmin(context.Background(), repo, cfg, zap.NewNop()))

	hash, err := utils.HashPassword("assistant-password")
	require.NoError(t, err)
	require.NoError(t, repo.User.Create(context.Background(), &entity.User{
		Username:     "paralegal@example.com",
		PasswordHash: hash,
		Role:         entity.RoleAssistant,
		Activated:    true,
		CreatedAt:    time.Now(),
	}))

	deps := usecase.Deps{
		Repo:       repo,
		Sessions:   token.NewIssuer(cfg.Auth.SessionSecret, time.Hour),
		Activation: token.NewIssuer(cfg.Auth.ActivationSecret, time.Hour),
		Mailer:     mailer.NewNopMailer(),
		Inference:  inference.NewClient(inferenceURL, cfg.Inference.Model, 5*time.Second),
		Config:     cfg,
	}

	return Wiring(deps, zap.NewNop())
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doLogin(t *testing.T, app *App, username, password string) (int, string) {
	t.Helper()

	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		return rec.Code, ""
	}

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var data struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "bearer", data.TokenType)
	return rec.Code, data.AccessToken
}

func TestHealth(t *testing.T) {
	app := newTestApp(t, "http://localhost:11434")

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestLoginEndpoint(t *testing.T) {
	app := newTestApp(t, "http://localhost:11434")

	code, tok := doLogin(t, app, "admin", "admin-password")
	assert.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, tok)

	code, _ = doLogin(t, app, "admin", "wrong-password")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = doLogin(t, app, "nobody@example.com", "whatever")
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestAdminRoutes_RoleGate(t *testing.T) {
	app := newTestApp(t, "http://localhost:11434")

	_, adminTok := doLogin(t, app, "admin", "admin-password")
	_, assistantTok := doLogin(t, app, "paralegal@example.com", "assistant-password")

	tests := []struct {
		name   string
		bearer string
		want   int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"garbage token", "not-a-jwt", http.StatusUnauthorized},
		{"assistant token", assistantTok, http.StatusForbidden},
		{"admin token", adminTok, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
			if tt.bearer != "" {
				req.Header.Set("Authorization", "Bearer "+tt.bearer)
			}

			rec := httptest.NewRecorder()
			app.Router.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestAskEndpoint(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"response": "Rent is due on the first."})
	}))
	defer backend.Close()

	app := newTestApp(t, backend.URL)
	_, adminTok := doLogin(t, app, "admin", "admin-password")
	_, assistantTok := doLogin(t, app, "paralegal@example.com", "assistant-password")

	newAsk := func(t *testing.T, bearer string) *http.Request {
		t.Helper()

		var buf strings.Builder
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile("file", "lease.txt")
		require.NoError(t, err)
		_, err = io.WriteString(fw, "The tenant shall pay rent on the first day of each month.")
		require.NoError(t, err)
		require.NoError(t, mw.WriteField("question", "When is rent due?"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(buf.String()))
		req.Header.Set("Content-Type", mw.FormDataContentType())
		if bearer != "" {
			req.Header.Set("Authorization", "Bearer "+bearer)
		}
		return req
	}

	t.Run("assistant gets an answer", func(t *testing.T) {
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, newAsk(t, assistantTok))
		require.Equal(t, http.StatusOK, rec.Code)

		var env envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		var data struct {
			Answer string `json:"answer"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "Rent is due on the first.", data.Answer)
	})

	t.Run("admin is rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, newAsk(t, adminTok))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("anonymous is rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, newAsk(t, ""))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUserLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t, "http://localhost:11434")
	_, adminTok := doLogin(t, app, "admin", "admin-password")

	do := func(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
		t.Helper()

		var reader io.Reader
		if body != "" {
			reader = strings.NewReader(body)
		}
		req := httptest.NewRequest(method, target, reader)
		req.Header.Set("Authorization", "Bearer "+adminTok)
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}

		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, req)
		return rec
	}

	rec := do(t, http.MethodPost, "/admin/users", `{"username":"bob@example.com","password":"hunter2","role":"assistant"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, http.MethodPost, "/admin/users", `{"username":"bob@example.com","role":"assistant"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Unactivated users cannot log in yet
	code, _ := doLogin(t, app, "bob@example.com", "hunter2")
	assert.Equal(t, http.StatusUnauthorized, code)

	rec = do(t, http.MethodPost, "/admin/force-activate", `{"username":"bob@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	code, _ = doLogin(t, app, "bob@example.com", "hunter2")
	assert.Equal(t, http.StatusOK, code)

	rec = do(t, http.MethodDelete, "/admin/users?username=bob@example.com", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, http.MethodDelete, "/admin/users?username=admin", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
