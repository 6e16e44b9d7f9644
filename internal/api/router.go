package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/Compass/internal/events"
	"github.com/MikeSquared-Agency/Compass/internal/portfolio"
)

func NewRouter(m *portfolio.Manager, ev events.Client, adminToken string, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(240))

	session := NewSessionHandler(m)
	pf := NewPortfolioHandler(m, ev)
	admin := NewAdminHandler(m)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/criteria", GetCriteria)

		r.Group(func(r chi.Router) {
			r.Use(SessionIDMiddleware)

			r.Get("/session", session.Get)
			r.Patch("/session/ratings", session.PatchRatings)
			r.Patch("/session/weights", session.PatchWeights)
			r.Patch("/session/thresholds", session.PatchThresholds)
			r.Post("/session/reset", session.Reset)

			r.Post("/evaluations/preview", session.Preview)

			r.Post("/portfolio", pf.Save)
			r.Get("/portfolio", pf.List)
			r.Get("/portfolio/{id}", pf.Get)
			r.Delete("/portfolio/{id}", pf.Delete)
		})

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(adminToken))
			r.Get("/stats", admin.Stats)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
