package usecase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"legal-assistant/internal/data/entity"
	"legal-assistant/internal/data/repository"
	"legal-assistant/internal/dto/request"
	"legal-assistant/internal/dto/response"
	"legal-assistant/pkg/mailer"
	"legal-assistant/pkg/token"
	"legal-assistant/pkg/utils"
)

type ActivationService interface {
	RequestActivation(ctx context.Context, req *request.SendActivationRequest) (*response.ActivationResponse, error)
	Redeem(ctx context.Context, req *request.RedeemActivationRequest) (*response.UserResponse, error)
}

type activationService struct {
	repo       *repository.Repository
	activation *token.Issuer
	mail       mailer.Mailer
	config     *utils.Config
	log        *zap.Logger
}

func NewActivationService(
	repo *repository.Repository,
	activation *token.Issuer,
	mail mailer.Mailer,
	config *utils.Config,
	log *zap.Logger,
) ActivationService {
	return &activationService{
		repo:       repo,
		activation: activation,
		mail:       mail,
		config:     config,
		log:        log,
	}
}

// RequestActivation issues a set-password link for an existing, unactivated
// user and mails it when SMTP is configured. The link is always returned so
// the dashboard can display it.
func (s *activationService) RequestActivation(ctx context.Context, req *request.SendActivationRequest) (*response.ActivationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Send activation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByUsername(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for activation", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrNotFound, req.Email)
	}
	if user.Activated {
		return nil, fmt.Errorf("%w: %s is already activated", entity.ErrAlreadyExists, req.Email)
	}

	signed, err := s.activation.IssueActivation(req.Email, entity.UserRole(req.Role))
	if err != nil {
		s.log.Error("Failed to issue activation token", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to issue activation token: %w", err)
	}

	link := fmt.Sprintf("%s/activate?token=%s", s.config.App.BaseURL, url.QueryEscape(signed))

	emailSent := false
	if s.config.Email.Enabled {
		if err := s.mail.SendActivation(req.Email, link); err != nil {
			s.log.Error("Failed to send activation email", zap.Error(err), zap.String("email", req.Email))
			return nil, err
		}
		emailSent = true
	}

	s.log.Info("Activation link issued",
		zap.String("email", req.Email),
		zap.String("role", req.Role),
		zap.Bool("email_sent", emailSent))

	return &response.ActivationResponse{
		Email:          req.Email,
		ActivationLink: link,
		EmailSent:      emailSent,
	}, nil
}

// Redeem verifies an activation token, sets the user's password and flips
// the activation flag. There is no used-token bookkeeping: redeeming the
// same token again simply resets the password within the token's validity.
func (s *activationService) Redeem(ctx context.Context, req *request.RedeemActivationRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Activation redeem validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	claims, err := s.activation.VerifyActivation(req.Token)
	if err != nil {
		s.log.Warn("Invalid activation token", zap.Error(err))
		return nil, entity.ErrInvalidToken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password: %w", err)
	}

	user := &entity.User{
		Username:     claims.Email,
		PasswordHash: hash,
		Role:         entity.UserRole(claims.Role),
		Activated:    true,
		CreatedAt:    time.Now(),
	}

	// Keep the original creation time and last login when the record exists
	existing, err := s.repo.User.FindByUsername(ctx, claims.Email)
	if err != nil {
		s.log.Error("Failed to load user for redemption", zap.Error(err), zap.String("email", claims.Email))
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if existing != nil {
		user.CreatedAt = existing.CreatedAt
		user.LastLogin = existing.LastLogin
	}

	if err := s.repo.User.Upsert(ctx, user); err != nil {
		s.log.Error("Failed to activate user", zap.Error(err), zap.String("email", claims.Email))
		return nil, fmt.Errorf("failed to activate user: %w", err)
	}

	s.log.Info("User activated",
		zap.String("email", claims.Email),
		zap.String("role", claims.Role))

	resp := response.UserToResponse(user)
	return &resp, nil
}
