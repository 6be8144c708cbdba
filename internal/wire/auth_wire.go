package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"legal-assistant/internal/adaptor"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, _ *zap.Logger) {
	// Public: credentials in, session token out
	r.Post("/login", authHandler.Login)
}
