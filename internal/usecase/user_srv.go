package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"legal-assistant/internal/data/entity"
	"legal-assistant/internal/data/repository"
	"legal-assistant/internal/dto/request"
	"legal-assistant/internal/dto/response"
	"legal-assistant/pkg/utils"
)

type UserService interface {
	GetAllUsers(ctx context.Context) ([]response.UserResponse, error)
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, username string) error
	ForceActivate(ctx context.Context, req *request.ForceActivateRequest) (*response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	config   *utils.Config
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, config *utils.Config, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		config:   config,
		log:      log,
	}
}

func (us *userService) GetAllUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := us.userRepo.FindAll(ctx)
	if err != nil {
		us.log.Error("Failed to get all users", zap.Error(err))
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	return response.UsersToResponse(users), nil
}

// CreateUser adds a record in the unactivated state; the account becomes
// usable once the activation flow or a force-activate sets the flag. The
// password is optional, redemption overwrites it anyway.
func (us *userService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Create user validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	var hash string
	if req.Password != "" {
		var err error
		hash, err = utils.HashPassword(req.Password)
		if err != nil {
			us.log.Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("failed to process password: %w", err)
		}
	}

	user := &entity.User{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         entity.UserRole(req.Role),
		Activated:    false,
		CreatedAt:    time.Now(),
	}

	if err := us.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, entity.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: %s", entity.ErrAlreadyExists, req.Username)
		}
		us.log.Error("Failed to create user", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	us.log.Info("User created",
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)))

	resp := response.UserToResponse(user)
	return &resp, nil
}

// DeleteUser removes a record. The default administrator is protected and
// can never be deleted, regardless of who asks.
func (us *userService) DeleteUser(ctx context.Context, username string) error {
	if username == "" {
		return fmt.Errorf("%w: username is required", entity.ErrInvalidInput)
	}

	if username == us.config.Auth.AdminUsername {
		us.log.Warn("Attempt to delete protected admin", zap.String("username", username))
		return fmt.Errorf("%w: cannot delete the default administrator", entity.ErrForbidden)
	}

	if err := us.userRepo.Delete(ctx, username); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return fmt.Errorf("%w: %s", entity.ErrNotFound, username)
		}
		us.log.Error("Failed to delete user", zap.Error(err), zap.String("username", username))
		return fmt.Errorf("failed to delete user: %w", err)
	}

	us.log.Info("User deleted", zap.String("username", username))
	return nil
}

// ForceActivate sets the activation flag without a token.
func (us *userService) ForceActivate(ctx context.Context, req *request.ForceActivateRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Force activate validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	user, err := us.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrNotFound, req.Username)
	}

	user.Activated = true
	if err := us.userRepo.Update(ctx, user); err != nil {
		us.log.Error("Failed to activate user", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to activate user: %w", err)
	}

	us.log.Info("User force-activated", zap.String("username", user.Username))

	resp := response.UserToResponse(user)
	return &resp, nil
}
