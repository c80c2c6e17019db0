package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/agentbridge/agentbridge/internal/config"
)

// CORS returns middleware that applies Cross-Origin Resource Sharing
// headers based on the provided configuration. Disabled configuration
// yields a pass-through handler.
func CORS(cfg *config.CORSConfig) Middleware {
	return func(next http.Handler) http.Handler {
		if !cfg.Enabled {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(cfg.Origins) > 0 {
				origin := r.Header.Get("Origin")
				if slices.Contains(cfg.Origins, origin) {
					w.Header().Set("Access-Control-Allow-Origin", origin)
				}
			}

			if len(cfg.AllowedMethods) > 0 {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(cfg.AllowedMethods, ", "))
			}

			if len(cfg.AllowedHeaders) > 0 {
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(cfg.AllowedHeaders, ", "))
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
