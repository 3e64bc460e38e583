package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/starford/laguz/internal/content"
	"github.com/starford/laguz/internal/contentservice"
)

// Handler holds the content read handlers.
type Handler struct {
	svc *contentservice.Service
}

// NewHandler creates a Handler over the cached content service.
func NewHandler(svc *contentservice.Service) *Handler {
	return &Handler{svc: svc}
}

// limitParam parses ?limit, returning 0 (meaning "use the per-entity
// default") for absent, malformed, or non-positive values.
func limitParam(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// latestParam reports whether ?latest selects the recency algorithm.
func latestParam(r *http.Request) bool {
	v := r.URL.Query().Get("latest")
	return v == "1" || v == "true"
}

func (h *Handler) internalError(w http.ResponseWriter, op string, err error) {
	slog.Error(op+" failed", slog.String("error", err.Error()))
	writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
}

// Nav handles GET /api/nav.
func (h *Handler) Nav(w http.ResponseWriter, r *http.Request) {
	nav, err := h.svc.Navigation(r.Context())
	if err != nil {
		h.internalError(w, "get navigation", err)
		return
	}
	writeJSON(w, http.StatusOK, nav)
}

// Footer handles GET /api/footer.
func (h *Handler) Footer(w http.ResponseWriter, r *http.Request) {
	f, err := h.svc.Footer(r.Context())
	if err != nil {
		h.internalError(w, "get footer", err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

// Announcements handles GET /api/announcements. The default selection is
// "active" (window-gated, pinned/priority first); ?latest=1 switches to the
// recency feed which ignores the window.
func (h *Handler) Announcements(w http.ResponseWriter, r *http.Request) {
	var (
		list []content.Announcement
		err  error
	)
	if latestParam(r) {
		list, err = h.svc.AnnouncementsLatest(r.Context(), limitParam(r))
	} else {
		list, err = h.svc.Announcements(r.Context(), limitParam(r))
	}
	if err != nil {
		h.internalError(w, "list announcements", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// AnnouncementBySlug handles GET /api/announcements/{slug}.
func (h *Handler) AnnouncementBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	a, err := h.svc.AnnouncementBySlug(r.Context(), slug)
	if err != nil {
		h.internalError(w, "get announcement", err)
		return
	}
	if a == nil {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// Events handles GET /api/events with the same latest/upcoming switch as
// announcements.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	var (
		list []content.Event
		err  error
	)
	if latestParam(r) {
		list, err = h.svc.EventsLatest(r.Context(), limitParam(r))
	} else {
		list, err = h.svc.EventsUpcoming(r.Context(), limitParam(r))
	}
	if err != nil {
		h.internalError(w, "list events", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Services handles GET /api/services.
func (h *Handler) Services(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Services(r.Context())
	if err != nil {
		h.internalError(w, "list services", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// ServiceBySlug handles GET /api/services/{slug}.
func (h *Handler) ServiceBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	svc, err := h.svc.ServiceBySlug(r.Context(), slug)
	if err != nil {
		h.internalError(w, "get service", err)
		return
	}
	if svc == nil {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

// Agreements handles GET /api/agreements.
func (h *Handler) Agreements(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Agreements(r.Context())
	if err != nil {
		h.internalError(w, "list agreements", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// AgreementBySlug handles GET /api/agreements/{slug}.
func (h *Handler) AgreementBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	a, err := h.svc.AgreementBySlug(r.Context(), slug)
	if err != nil {
		h.internalError(w, "get agreement", err)
		return
	}
	if a == nil {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// Attachments handles GET /api/attachments with category/q filters and
// page/pageSize pagination (pageSize capped at 100).
func (h *Handler) Attachments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("pageSize"))

	res, err := h.svc.Attachments(r.Context(), content.AttachmentQuery{
		Category: q.Get("category"),
		Q:        q.Get("q"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		h.internalError(w, "list attachments", err)
		return
	}
	w.Header().Set("Cache-Control", "public, s-maxage=60, stale-while-revalidate=300")
	writeJSON(w, http.StatusOK, res)
}

// Features handles GET /api/features.
func (h *Handler) Features(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Features(r.Context(), limitParam(r))
	if err != nil {
		h.internalError(w, "list features", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Recommendations handles GET /api/recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.RecommendationsLatest(r.Context(), limitParam(r))
	if err != nil {
		h.internalError(w, "list recommendations", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// PageBySlug handles GET /api/pages/{slug}.
func (h *Handler) PageBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	p, err := h.svc.PageBySlug(r.Context(), slug)
	if err != nil {
		h.internalError(w, "get page", err)
		return
	}
	if p == nil {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	writeJSON(w, http.StatusOK, p)
}
