package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"legal-assistant/internal/data/entity"
	"legal-assistant/internal/data/repository"
	"legal-assistant/internal/dto/request"
)

func TestCreateUser(t *testing.T) {
	cfg := newTestConfig()
	service, repo := newTestService(t, cfg, nil)
	ctx := context.Background()

	created, err := service.User.CreateUser(ctx, &request.CreateUserRequest{
		Username: "bob@example.com",
		Password: "hunter2",
		Role:     "assistant",
	})
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", created.Username)
	assert.Equal(t, entity.RoleAssistant, created.Role)
	assert.False(t, created.Activated, "admin-created users start unactivated")

	stored, err := repo.User.FindByUsername(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", stored.PasswordHash, "plaintext is never stored")
}

func TestCreateUser_Duplicate(t *testing.T) {
	cfg := newTestConfig()
	service, _ := newTestService(t, cfg, nil)
	ctx := context.Background()

	_, err := service.User.CreateUser(ctx, &request.CreateUserRequest{
		Username: "bob@example.com",
		Role:     "assistant",
	})
	require.NoError(t, err)

	_, err = service.User.CreateUser(ctx, &request.CreateUserRequest{
		Username: "bob@example.com",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, entity.ErrAlreadyExists)
}

func TestCreateUser_BadRole(t *testing.T) {
	cfg := newTestConfig()
	service, _ := newTestService(t, cfg, nil)

	_, err := service.User.CreateUser(context.Background(), &request.CreateUserRequest{
		Username: "bob@example.com",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestDeleteUser(t *testing.T) {
	cfg := newTestConfig()
	service, repo := newTestService(t, cfg, nil)
	seedUser(t, repo, "bob@example.com", "hunter2", entity.RoleAssistant, true)
	ctx := context.Background()

	require.NoError(t, service.User.DeleteUser(ctx, "bob@example.com"))

	assert.ErrorIs(t, service.User.DeleteUser(ctx, "bob@example.com"), entity.ErrNotFound)
}

func TestDeleteUser_ProtectedAdmin(t *testing.T) {
	cfg := newTestConfig()
	service, repo := newTestService(t, cfg, nil)
	seedUser(t, repo, "admin", "admin-password", entity.RoleAdmin, true)

	// The default administrator can never be deleted
	err := service.User.DeleteUser(context.Background(), "admin")
	assert.ErrorIs(t, err, entity.ErrForbidden)

	user, findErr := repo.User.FindByUsername(context.Background(), "admin")
	require.NoError(t, findErr)
	assert.NotNil(t, user)
}

func TestForceActivate(t *testing.T) {
	cfg := newTestConfig()
	service, repo := newTestService(t, cfg, nil)
	seedUser(t, repo, "bob@example.com", "hunter2", entity.RoleAssistant, false)
	ctx := context.Background()

	resp, err := service.User.ForceActivate(ctx, &request.ForceActivateRequest{Username: "bob@example.com"})
	require.NoError(t, err)
	assert.True(t, resp.Activated)

	// Activation bypassed the token flow entirely; login now works
	_, err = service.Auth.Login(ctx, &request.LoginRequest{
		Username: "bob@example.com",
		Password: "hunter2",
	})
	assert.NoError(t, err)
}

func TestForceActivate_UnknownUser(t *testing.T) {
	cfg := newTestConfig()
	service, _ := newTestService(t, cfg, nil)

	_, err := service.User.ForceActivate(context.Background(), &request.ForceActivateRequest{Username: "nobody@example.com"})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

// wrappingStore returns its sentinels wrapped the way a backend driver
// would, so the mapping must go through errors.Is rather than equality.
type wrappingStore struct {
	repository.UserRepository
}

func (s *wrappingStore) Create(ctx context.Context, user *entity.User) error {
	return fmt.Errorf("store: %w", entity.ErrAlreadyExists)
}

func (s *wrappingStore) Delete(ctx context.Context, username string) error {
	return fmt.Errorf("store: %w", entity.ErrNotFound)
}

func TestUserService_WrappedStoreErrors(t *testing.T) {
	svc := NewUserService(&wrappingStore{}, newTestConfig(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, &request.CreateUserRequest{
		Username: "bob@example.com",
		Role:     "assistant",
	})
	assert.ErrorIs(t, err, entity.ErrAlreadyExists)

	assert.ErrorIs(t, svc.DeleteUser(ctx, "bob@example.com"), entity.ErrNotFound)
}

func TestGetAllUsers_OmitsHashes(t *testing.T) {
	cfg := newTestConfig()
	service, repo := newTestService(t, cfg, nil)
	seedUser(t, repo, "bob@example.com", "hunter2", entity.RoleAssistant, true)
	seedUser(t, repo, "admin", "admin-password", entity.RoleAdmin, true)

	users, err := service.User.GetAllUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
