package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"legal-assistant/internal/data/entity"
	"legal-assistant/internal/data/repository"
	"legal-assistant/pkg/utils"
)

// EnsureDefaultAdmin creates the protected administrator account on first
// start. Without it a fresh store has no one who can log in to create
// anyone else.
func EnsureDefaultAdmin(ctx context.Context, repo *repository.Repository, cfg *utils.Config, log *zap.Logger) error {
	username := cfg.Auth.AdminUsername

	existing, err := repo.User.FindByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("check default admin: %w", err)
	}
	if existing != nil {
		return nil
	}

	if cfg.Auth.AdminPassword == "" {
		return fmt.Errorf("store has no %q user and ADMIN_PASSWORD is not set", username)
	}

	hash, err := utils.HashPassword(cfg.Auth.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	admin := &entity.User{
		Username:     username,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		Activated:    true,
		CreatedAt:    time.Now(),
	}

	if err := repo.User.Create(ctx, admin); err != nil {
		return fmt.Errorf("create default admin: %w", err)
	}

	log.Info("Default admin created", zap.String("username", username))
	return nil
}
