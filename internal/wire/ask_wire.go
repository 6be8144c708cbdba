package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"legal-assistant/internal/adaptor"
	"legal-assistant/internal/data/entity"
	"legal-assistant/internal/usecase"
	"legal-assistant/pkg/middleware"
)

func wireAsk(r chi.Router, h *adaptor.AskHandler, deps usecase.Deps, log *zap.Logger) {
	// Document Q&A is the assistant's endpoint; admins administer instead
	r.With(
		middleware.AuthSession(deps.Sessions, deps.Repo.User, log),
		middleware.RequireRole(log, entity.RoleAssistant),
	).Post("/ask", h.Ask)
}
