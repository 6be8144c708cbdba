package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"legal-assistant/internal/data/entity"
	"legal-assistant/pkg/database"
)

const pgUniqueViolation = "23505"

type postgresUserRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPostgresUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &postgresUserRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func (r *postgresUserRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (username, password, role, activated, created_at, last_login)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		user.Username,
		user.PasswordHash,
		user.Role,
		user.Activated,
		user.CreatedAt,
		user.LastLogin,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return entity.ErrAlreadyExists
		}
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("username", user.Username),
		)
		return fmt.Errorf("create user %s: %w", user.Username, err)
	}

	return nil
}

func (r *postgresUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT username, password, role, activated, created_at, last_login
		FROM users
		WHERE username = $1
	`

	var user entity.User
	// QueryRow returns at most one row
	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.Username,
		&user.PasswordHash,
		&user.Role,
		&user.Activated,
		&user.CreatedAt,
		&user.LastLogin,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find user by username %s: %w", username, err)
	}

	return &user, nil
}

func (r *postgresUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	query := `
		SELECT username, password, role, activated, created_at, last_login
		FROM users
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get all users", zap.Error(err))
		return nil, fmt.Errorf("find all users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var user entity.User
		err := rows.Scan(
			&user.Username,
			&user.PasswordHash,
			&user.Role,
			&user.Activated,
			&user.CreatedAt,
			&user.LastLogin,
		)
		if err != nil {
			r.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate users rows: %w", err)
	}

	return users, nil
}

func (r *postgresUserRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM users`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count users", zap.Error(err))
		return 0, fmt.Errorf("count users: %w", err)
	}

	return count, nil
}

func (r *postgresUserRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET password = $2, role = $3, activated = $4, last_login = $5
		WHERE username = $1
	`

	result, err := r.db.Exec(ctx, query,
		user.Username,
		user.PasswordHash,
		user.Role,
		user.Activated,
		user.LastLogin,
	)

	if err != nil {
		r.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("username", user.Username),
		)
		return fmt.Errorf("update user %s: %w", user.Username, err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *postgresUserRepository) Upsert(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (username, password, role, activated, created_at, last_login)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (username) DO UPDATE
		SET password = EXCLUDED.password,
		    role = EXCLUDED.role,
		    activated = EXCLUDED.activated
	`

	_, err := r.db.Exec(ctx, query,
		user.Username,
		user.PasswordHash,
		user.Role,
		user.Activated,
		user.CreatedAt,
		user.LastLogin,
	)

	if err != nil {
		r.log.Error("Failed to upsert user",
			zap.Error(err),
			zap.String("username", user.Username),
		)
		return fmt.Errorf("upsert user %s: %w", user.Username, err)
	}

	return nil
}

func (r *postgresUserRepository) Delete(ctx context.Context, username string) error {
	query := `DELETE FROM users WHERE username = $1`

	result, err := r.db.Exec(ctx, query, username)
	if err != nil {
		r.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("username", username),
		)
		return fmt.Errorf("delete user %s: %w", username, err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	r.log.Info("User deleted", zap.String("username", username))
	return nil
}
