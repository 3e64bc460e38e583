package api

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/starford/laguz/internal/contentservice"
)

// SecretHeader carries the revalidation secret from the content-authoring
// system.
const SecretHeader = "x-revalidate-secret"

// Invalidator is the slice of the content service the revalidation endpoint
// needs.
type Invalidator interface {
	Invalidate(tag string)
	InvalidatePath(path string)
}

var _ Invalidator = (*contentservice.Service)(nil)

// RevalidateHandler is the sole authenticated mutation surface: it drops
// cache entries by tag and/or rendered path when the authoring system reports
// a content change.
type RevalidateHandler struct {
	secret string
	inv    Invalidator
}

// NewRevalidateHandler creates the handler. An empty secret disables the
// endpoint entirely (every request is rejected), since an unauthenticated
// invalidation path would let anyone flush the cache.
func NewRevalidateHandler(secret string, inv Invalidator) *RevalidateHandler {
	return &RevalidateHandler{secret: secret, inv: inv}
}

type revalidateRequest struct {
	Tag  string `json:"tag,omitempty"`
	Path string `json:"path,omitempty"`
}

type revalidateResponse struct {
	OK bool `json:"ok"`
}

// ServeHTTP handles POST /api/revalidate. The secret comparison is constant
// time. Invalidating an already-invalid tag or path is a no-op, so the
// endpoint is idempotent.
func (h *RevalidateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	secret := r.Header.Get(SecretHeader)
	if h.secret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(h.secret)) != 1 {
		writeJSON(w, http.StatusUnauthorized, revalidateResponse{OK: false})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req revalidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}

	if req.Tag != "" {
		h.inv.Invalidate(req.Tag)
		slog.Info("cache tag invalidated", slog.String("tag", req.Tag))
	}
	if req.Path != "" {
		h.inv.InvalidatePath(req.Path)
		slog.Info("cache path invalidated", slog.String("path", req.Path))
	}
	writeJSON(w, http.StatusOK, revalidateResponse{OK: true})
}
