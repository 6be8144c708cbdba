package adaptor

import (
	"errors"

	"go.uber.org/zap"

	"legal-assistant/internal/data/entity"
	"legal-assistant/internal/usecase"
	"legal-assistant/pkg/utils"

	"net/http"
)

type Handler struct {
	Auth       *AuthHandler
	Activation *ActivationHandler
	User       *UserHandler
	Ask        *AskHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(service.Auth, log),
		Activation: NewActivationHandler(service.Activation, log),
		User:       NewUserHandler(service.User, log),
		Ask:        NewAskHandler(service.Ask, log),
	}
}

// handleServiceError maps the service error taxonomy onto HTTP statuses.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, entity.ErrUnauthorized), errors.Is(err, entity.ErrInvalidToken):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, entity.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, entity.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, entity.ErrAlreadyExists):
		log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, entity.ErrInvalidInput):
		log.Warn(operation+" failed - invalid input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, entity.ErrUnsupportedType):
		log.Warn(operation+" failed - unsupported type", zap.Error(err))
		utils.ResponseUnsupportedMedia(w, err.Error())

	case errors.Is(err, entity.ErrInference), errors.Is(err, entity.ErrEmailDelivery):
		log.Error(operation+" failed - downstream error", zap.Error(err))
		utils.ResponseBadGateway(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
