package api

import (
	"fmt"
	"html"
	"net/http"

	"github.com/starford/laguz/internal/maintenance"
)

// MaintenanceView renders the maintenance page. The gate middleware serves it
// for any non-API path in hard mode; it is also routed at /maintenance so the
// page stays reachable in every mode.
func MaintenanceView(message string) http.Handler {
	if message == "" {
		message = "We are performing scheduled maintenance. Please check back soon."
	}
	body := fmt.Sprintf(`<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>Maintenance</title></head>
<body><main><h1>Down for maintenance</h1><p>%s</p></main></body>
</html>`, html.EscapeString(message))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(body))
	})
}

// Index serves a minimal status page at the site root. In soft mode it shows
// a non-blocking notice banner while real content keeps being served.
func Index() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		banner := ""
		if maintenance.FromContext(r.Context()) == maintenance.Soft {
			banner = `<aside>Some features may be briefly unavailable during maintenance.</aside>`
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, `<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>Content API</title></head>
<body>%s<main><h1>Content API</h1><p>See /api for endpoints.</p></main></body>
</html>`, banner)
	})
}
