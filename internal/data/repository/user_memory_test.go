package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legal-assistant/internal/data/entity"
)

func newTestUser(username string) *entity.User {
	return &entity.User{
		Username:     username,
		PasswordHash: "$2a$10$fakehash",
		Role:         entity.RoleAssistant,
		Activated:    false,
		CreatedAt:    time.Now(),
	}
}

func TestMemoryRepository_CreateAndFind(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestUser("bob@example.com")))

	user, err := repo.FindByUsername(ctx, "bob@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "bob@example.com", user.Username)
	assert.Equal(t, entity.RoleAssistant, user.Role)
	assert.False(t, user.Activated)
}

func TestMemoryRepository_FindAbsent(t *testing.T) {
	repo := NewMemoryUserRepository()

	user, err := repo.FindByUsername(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestMemoryRepository_CreateDuplicate(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestUser("bob@example.com")))

	err := repo.Create(ctx, newTestUser("bob@example.com"))
	assert.ErrorIs(t, err, entity.ErrAlreadyExists)
}

func TestMemoryRepository_UpdateAndDelete(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user := newTestUser("bob@example.com")
	require.NoError(t, repo.Create(ctx, user))

	user.Activated = true
	require.NoError(t, repo.Update(ctx, user))

	got, err := repo.FindByUsername(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.True(t, got.Activated)

	require.NoError(t, repo.Delete(ctx, "bob@example.com"))

	assert.ErrorIs(t, repo.Delete(ctx, "bob@example.com"), entity.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, user), entity.ErrNotFound)
}

func TestMemoryRepository_UpsertAndList(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	// Upsert inserts when absent
	require.NoError(t, repo.Upsert(ctx, newTestUser("carol@example.com")))
	require.NoError(t, repo.Upsert(ctx, newTestUser("bob@example.com")))

	// and overwrites when present
	updated := newTestUser("bob@example.com")
	updated.Activated = true
	require.NoError(t, repo.Upsert(ctx, updated))

	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	// Sorted by username
	assert.Equal(t, "bob@example.com", users[0].Username)
	assert.True(t, users[0].Activated)
	assert.Equal(t, "carol@example.com", users[1].Username)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestUser("bob@example.com")))

	first, err := repo.FindByUsername(ctx, "bob@example.com")
	require.NoError(t, err)

	// Mutating the returned record must not touch the stored one
	first.Activated = true

	second, err := repo.FindByUsername(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.False(t, second.Activated)
}
