package wire

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"legal-assistant/internal/adaptor"
	"legal-assistant/internal/usecase"
	"legal-assistant/pkg/middleware"
)

// App holds the assembled HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring builds services and handlers from the injected dependencies and
// mounts every route. The per-route role sets live in the wire* files; this
// is the single place the endpoint permission table is written down.
func Wiring(deps usecase.Deps, logger *zap.Logger) *App {
	service := usecase.NewService(deps, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, deps, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, deps usecase.Deps, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, logger)
	wireActivation(r, handler.Activation, deps, logger)
	wireUser(r, handler.User, deps, logger)
	wireAsk(r, handler.Ask, deps, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
