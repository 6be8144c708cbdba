package usecase

import (
	"go.uber.org/zap"

	"legal-assistant/internal/data/repository"
	"legal-assistant/pkg/inference"
	"legal-assistant/pkg/mailer"
	"legal-assistant/pkg/token"
	"legal-assistant/pkg/utils"
)

type Service struct {
	Auth       AuthService
	Activation ActivationService
	User       UserService
	Ask        AskService
}

// Deps carries the external collaborators the services depend on; everything
// is injected, nothing is process-global.
type Deps struct {
	Repo       *repository.Repository
	Sessions   *token.Issuer
	Activation *token.Issuer
	Mailer     mailer.Mailer
	Inference  *inference.Client
	Config     *utils.Config
}

func NewService(deps Deps, log *zap.Logger) *Service {
	return &Service{
		Auth:       NewAuthService(deps.Repo, deps.Sessions, log),
		Activation: NewActivationService(deps.Repo, deps.Activation, deps.Mailer, deps.Config, log),
		User:       NewUserService(deps.Repo.User, deps.Config, log),
		Ask:        NewAskService(deps.Inference, deps.Config, log),
	}
}
