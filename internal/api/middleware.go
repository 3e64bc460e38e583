package api

import (
	"net/http"
	"strings"

	"github.com/starford/laguz/internal/maintenance"
)

// MaintenanceGate snapshots the process-wide maintenance mode once per
// request into the request context and, in hard mode, serves the maintenance
// view for every non-API path while leaving the request URL untouched. API
// paths are exempt so health and status checks keep responding.
func MaintenanceGate(state *maintenance.State, view http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mode := state.Mode()
			r = r.WithContext(maintenance.NewContext(r.Context(), mode))

			if mode == maintenance.Hard &&
				!strings.HasPrefix(r.URL.Path, "/api") &&
				r.URL.Path != "/maintenance" {
				view.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
