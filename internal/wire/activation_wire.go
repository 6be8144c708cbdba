package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"legal-assistant/internal/adaptor"
	"legal-assistant/internal/data/entity"
	"legal-assistant/internal/usecase"
	"legal-assistant/pkg/middleware"
)

func wireActivation(r chi.Router, h *adaptor.ActivationHandler, deps usecase.Deps, log *zap.Logger) {
	// Issuing a link is an admin action
	r.With(
		middleware.AuthSession(deps.Sessions, deps.Repo.User, log),
		middleware.RequireRole(log, entity.RoleAdmin),
	).Post("/send-activation", h.SendActivation)

	// Redemption is reached from an emailed link, so it stays public
	r.Get("/activate", h.ActivateForm)
	r.Post("/activate", h.Activate)
}
