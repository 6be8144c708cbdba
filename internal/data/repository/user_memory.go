package repository

import (
	"context"
	"sort"
	"sync"

	"legal-assistant/internal/data/entity"
)

// memoryUserRepository keeps records in a plain map. Used by tests and by
// throwaway deployments; nothing survives a restart.
type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]entity.User
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		users: make(map[string]entity.User),
	}
}

func (r *memoryUserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return entity.ErrAlreadyExists
	}

	r.users[user.Username] = *user
	return nil
}

func (r *memoryUserRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[username]
	if !exists {
		return nil, nil
	}

	return &user, nil
}

func (r *memoryUserRepository) FindAll(_ context.Context) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*entity.User, 0, len(r.users))
	for username := range r.users {
		user := r.users[username]
		users = append(users, &user)
	}

	// Map iteration order is random; keep listings stable.
	sort.Slice(users, func(i, j int) bool {
		return users[i].Username < users[j].Username
	})

	return users, nil
}

func (r *memoryUserRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.users)), nil
}

func (r *memoryUserRepository) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; !exists {
		return entity.ErrNotFound
	}

	r.users[user.Username] = *user
	return nil
}

func (r *memoryUserRepository) Upsert(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.Username] = *user
	return nil
}

func (r *memoryUserRepository) Delete(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[username]; !exists {
		return entity.ErrNotFound
	}

	delete(r.users, username)
	return nil
}
