package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/passmeter/passmeter-go/internal/middleware"
	"github.com/passmeter/passmeter-go/internal/service"
)

// RouterConfig carries what NewRouter needs beyond the services.
type RouterConfig struct {
	Logger         *slog.Logger
	RateLimitRPS   float64
	RateLimitBurst int
	// TrustProxyHeaders takes the client IP from X-Forwarded-For/X-Real-IP.
	// Only safe behind a proxy that overwrites those headers; otherwise any
	// caller can pick its own rate-limit bucket.
	TrustProxyHeaders bool
}

// NewRouter wires every route. ctx bounds background work started by the
// middleware and should be cancelled on shutdown.
func NewRouter(ctx context.Context, cfg RouterConfig) http.Handler {
	strengthHandler := NewStrengthHandler(service.NewStrengthService())
	signupHandler := NewSignupHandler(service.NewSignupService())
	genHandler := NewGeneratorHandler(service.NewGeneratorService())

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	if cfg.TrustProxyHeaders {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))

		r.Post("/api/v1/strength", strengthHandler.HandleCheck)
		r.Post("/api/v1/strength/batch", strengthHandler.HandleCheckBatch)
		r.Post("/api/v1/signup/validate", signupHandler.HandleValidate)
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
	})

	return r
}
