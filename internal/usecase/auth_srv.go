package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"legal-assistant/internal/data/entity"
	"legal-assistant/internal/data/repository"
	"legal-assistant/internal/dto/request"
	"legal-assistant/internal/dto/response"
	"legal-assistant/pkg/token"
	"legal-assistant/pkg/utils"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
}

type authService struct {
	repo     *repository.Repository
	sessions *token.Issuer
	log      *zap.Logger
}

func NewAuthService(repo *repository.Repository, sessions *token.Issuer, log *zap.Logger) AuthService {
	return &authService{
		repo:     repo,
		sessions: sessions,
		log:      log,
	}
}

// Login exchanges credentials for a session token. A missing user, a wrong
// password and an unactivated account all collapse to ErrUnauthorized so the
// response does not leak which of the three it was.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if user == nil {
		s.log.Warn("User not found for login", zap.String("username", req.Username))
		return nil, entity.ErrUnauthorized
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("username", user.Username))
		return nil, entity.ErrUnauthorized
	}

	if !user.Activated {
		s.log.Warn("Unactivated account tried to login", zap.String("username", user.Username))
		return nil, entity.ErrUnauthorized
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.repo.User.Update(ctx, user); err != nil {
		// Login still succeeds; last_login is advisory
		s.log.Warn("Failed to update last login", zap.Error(err), zap.String("username", user.Username))
	}

	signed, err := s.sessions.IssueSession(user.Username, user.Role)
	if err != nil {
		s.log.Error("Failed to issue session token", zap.Error(err), zap.String("username", user.Username))
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)))

	return &response.LoginResponse{
		AccessToken: signed,
		TokenType:   "bearer",
	}, nil
}
