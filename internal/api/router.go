// Package api implements the content HTTP surface using chi.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/starford/laguz/internal/contentservice"
	"github.com/starford/laguz/internal/maintenance"
)

// Config wires the router's collaborators.
type Config struct {
	Service            *contentservice.Service
	Maintenance        *maintenance.State
	MaintenanceMessage string
	RevalidateSecret   string
}

// NewRouter builds the full server router: maintenance gate, read endpoints
// under /api, the revalidation endpoint, and the minimal HTML surface.
func NewRouter(cfg Config) chi.Router {
	h := NewHandler(cfg.Service)
	rv := NewRevalidateHandler(cfg.RevalidateSecret, cfg.Service)
	view := MaintenanceView(cfg.MaintenanceMessage)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(MaintenanceGate(cfg.Maintenance, view))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", health)

		r.Get("/nav", h.Nav)
		r.Get("/footer", h.Footer)

		r.Get("/announcements", h.Announcements)
		r.Get("/announcements/{slug}", h.AnnouncementBySlug)

		r.Get("/events", h.Events)

		r.Get("/services", h.Services)
		r.Get("/services/{slug}", h.ServiceBySlug)

		r.Get("/agreements", h.Agreements)
		r.Get("/agreements/{slug}", h.AgreementBySlug)

		r.Get("/attachments", h.Attachments)

		r.Get("/features", h.Features)
		r.Get("/recommendations", h.Recommendations)

		r.Get("/pages/{slug}", h.PageBySlug)

		r.Post("/revalidate", rv.ServeHTTP)
	})

	r.Get("/", Index().ServeHTTP)
	r.Get("/maintenance", view.ServeHTTP)

	return r
}

// health reports liveness and the current maintenance mode. Hard mode answers
// 503 so load balancers drain the instance, but the endpoint itself is exempt
// from the gate rewrite.
func health(w http.ResponseWriter, r *http.Request) {
	mode := maintenance.FromContext(r.Context())
	status := http.StatusOK
	if mode == maintenance.Hard {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]any{
		"ok":          mode != maintenance.Hard,
		"maintenance": mode,
	})
}
