package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"legal-assistant/internal/data/entity"
	"legal-assistant/internal/data/repository"
	"legal-assistant/pkg/inference"
	"legal-assistant/pkg/mailer"
	"legal-assistant/pkg/token"
	"legal-assistant/pkg/utils"
)

const (
	testSessionSecret    = "test-session-secret"
	testActivationSecret = "test-activation-secret"
)

func newTestConfig() *utils.Config {
	return &utils.Config{
		App: utils.AppConfig{
			Name:    "legal-assistant",
			BaseURL: "http://localhost:8000",
		},
		Storage: utils.StorageConfig{Driver: "memory"},
		Auth: utils.AuthConfig{
			SessionSecret:         testSessionSecret,
			SessionExpiryHours:    24,
			ActivationSecret:      testActivationSecret,
			ActivationExpiryHours: 48,
			AdminUsername:         "admin",
			AdminPassword:         "admin-password",
		},
		Inference: utils.InferenceConfig{
			Model:          "mistral",
			MaxPromptChars: 24000,
		},
	}
}

// newTestService wires the full service stack over the in-memory store.
// The inference endpoint can be overridden per test via cfg before calling.
func newTestService(t *testing.T, cfg *utils.Config, client *inference.Client) (*Service, *repository.Repository) {
	t.Helper()

	repo, err := repository.NewRepository(cfg, nil, zap.NewNop())
	require.NoError(t, err)

	deps := Deps{
		Repo:       repo,
		Sessions:   token.NewIssuer(cfg.Auth.SessionSecret, time.Duration(cfg.Auth.SessionExpiryHours)*time.Hour),
		Activation: token.NewIssuer(cfg.Auth.ActivationSecret, time.Duration(cfg.Auth.ActivationExpiryHours)*time.Hour),
		Mailer:     mailer.NewNopMailer(),
		Inference:  client,
		Config:     cfg,
	}

	return NewService(deps, zap.NewNop()), repo
}

func sessionIssuerForTest() *token.Issuer {
	return token.NewIssuer(testSessionSecret, time.Hour)
}

// seedUser puts a user straight into the store.
func seedUser(t *testing.T, repo *repository.Repository, username, password string, role entity.UserRole, activated bool) {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	require.NoError(t, repo.User.Create(context.Background(), &entity.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		Activated:    activated,
		CreatedAt:    time.Now(),
	}))
}
