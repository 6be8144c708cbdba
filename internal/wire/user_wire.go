package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"legal-assistant/internal/adaptor"
	"legal-assistant/internal/data/entity"
	"legal-assistant/internal/usecase"
	"legal-assistant/pkg/middleware"
)

func wireUser(r chi.Router, h *adaptor.UserHandler, deps usecase.Deps, log *zap.Logger) {
	r.Route("/admin", func(admin chi.Router) {
		admin.Use(
			middleware.AuthSession(deps.Sessions, deps.Repo.User, log),
			middleware.RequireRole(log, entity.RoleAdmin),
		)

		admin.Get("/users", h.GetAllUsers)
		admin.Post("/users", h.CreateUser)
		admin.Delete("/users", h.DeleteUser)
		admin.Post("/force-activate", h.ForceActivate)
	})
}
