package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"legal-assistant/internal/data/entity"
)

// jsonUserRecord is the on-disk shape: one JSON object keyed by username.
type jsonUserRecord struct {
	Password  string     `json:"password"`
	Role      string     `json:"role"`
	Activated bool       `json:"activated"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// jsonUserRepository persists users in a single JSON file. The mutex makes
// it safe within one process; concurrent writers from separate processes
// still race on the file itself.
type jsonUserRepository struct {
	mu   sync.Mutex
	path string
	log  *zap.Logger
}

func NewJSONUserRepository(path string, log *zap.Logger) UserRepository {
	return &jsonUserRepository{
		path: path,
		log:  log.With(zap.String("repository", "user"), zap.String("driver", "json")),
	}
}

func (r *jsonUserRepository) load() (map[string]jsonUserRecord, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return map[string]jsonUserRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read user file %s: %w", r.path, err)
	}

	users := map[string]jsonUserRecord{}
	if len(data) == 0 {
		return users, nil
	}
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("decode user file %s: %w", r.path, err)
	}

	return users, nil
}

func (r *jsonUserRepository) save(users map[string]jsonUserRecord) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("encode user file: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0600); err != nil {
		return fmt.Errorf("write user file %s: %w", r.path, err)
	}

	return nil
}

func toRecord(user *entity.User) jsonUserRecord {
	return jsonUserRecord{
		Password:  user.PasswordHash,
		Role:      string(user.Role),
		Activated: user.Activated,
		CreatedAt: user.CreatedAt,
		LastLogin: user.LastLogin,
	}
}

func fromRecord(username string, rec jsonUserRecord) *entity.User {
	return &entity.User{
		Username:     username,
		PasswordHash: rec.Password,
		Role:         entity.UserRole(rec.Role),
		Activated:    rec.Activated,
		CreatedAt:    rec.CreatedAt,
		LastLogin:    rec.LastLogin,
	}
}

func (r *jsonUserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		r.log.Error("Failed to load users", zap.Error(err))
		return err
	}

	if _, exists := users[user.Username]; exists {
		return entity.ErrAlreadyExists
	}

	users[user.Username] = toRecord(user)
	return r.save(users)
}

func (r *jsonUserRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		r.log.Error("Failed to load users", zap.Error(err))
		return nil, err
	}

	rec, exists := users[username]
	if !exists {
		return nil, nil
	}

	return fromRecord(username, rec), nil
}

func (r *jsonUserRepository) FindAll(_ context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		r.log.Error("Failed to load users", zap.Error(err))
		return nil, err
	}

	result := make([]*entity.User, 0, len(users))
	for username, rec := range users {
		result = append(result, fromRecord(username, rec))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Username < result[j].Username
	})

	return result, nil
}

func (r *jsonUserRepository) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return 0, err
	}

	return int64(len(users)), nil
}

func (r *jsonUserRepository) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		r.log.Error("Failed to load users", zap.Error(err))
		return err
	}

	if _, exists := users[user.Username]; !exists {
		return entity.ErrNotFound
	}

	users[user.Username] = toRecord(user)
	return r.save(users)
}

func (r *jsonUserRepository) Upsert(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		r.log.Error("Failed to load users", zap.Error(err))
		return err
	}

	users[user.Username] = toRecord(user)
	return r.save(users)
}

func (r *jsonUserRepository) Delete(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		r.log.Error("Failed to load users", zap.Error(err))
		return err
	}

	if _, exists := users[username]; !exists {
		return entity.ErrNotFound
	}

	delete(users, username)

	if err := r.save(users); err != nil {
		return err
	}

	r.log.Info("User deleted", zap.String("username", username))
	return nil
}
