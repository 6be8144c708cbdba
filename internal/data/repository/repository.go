package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"legal-assistant/internal/data/entity"
	"legal-assistant/pkg/database"
	"legal-assistant/pkg/utils"
)

// UserRepository is the single credential-store abstraction. Every backend
// follows the same conventions: FindByUsername returns (nil, nil) when the
// record is absent, Create fails with entity.ErrAlreadyExists on a duplicate
// username, Update and Delete fail with entity.ErrNotFound.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, user *entity.User) error
	Upsert(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, username string) error
}

type Repository struct {
	User UserRepository
}

// NewRepository selects the storage backend from config. The db handle is
// only required for the postgres driver and may be nil otherwise.
func NewRepository(cfg *utils.Config, db database.PgxIface, log *zap.Logger) (*Repository, error) {
	var users UserRepository

	switch cfg.Storage.Driver {
	case "memory":
		users = NewMemoryUserRepository()
	case "json":
		users = NewJSONUserRepository(cfg.Storage.JSONPath, log)
	case "postgres":
		if db == nil {
			return nil, fmt.Errorf("postgres driver selected but no database connection")
		}
		users = NewPostgresUserRepository(db, log)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	return &Repository{User: users}, nil
}
