package wire

import (
	"net/http"

	"filmorate/internal/adaptor"
	"filmorate/internal/data/repository"
	"filmorate/internal/usecase"
	"filmorate/pkg/middleware"
	"filmorate/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired router.
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes over repo.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, config, logger),
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware, request id first so every log line carries it
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	if config.Metrics.Enabled {
		metrics := middleware.NewMetrics(config.App.Name)
		r.Use(metrics.Handler)
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Group(func(r chi.Router) {
		if config.RateLimit.RPS > 0 {
			r.Use(middleware.NewRateLimiter(config.RateLimit.RPS, config.RateLimit.Burst).Handler)
		}

		wireFilm(r, handler.Film)
		wireUser(r, handler.User)
		wireGenre(r, handler.Genre)
		wireMpa(r, handler.Mpa)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})

	return r
}
