package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/agentbridge/agentbridge/pkg/handlers"
)

// Recover returns middleware that converts handler panics into a 500
// JSON response carrying the failure message and stack trace. A request
// handler failure never crashes the process.
func Recover(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					err, ok := rec.(error)
					if !ok {
						err = fmt.Errorf("%v", rec)
					}
					handlers.RespondErrorTrace(
						w, logger,
						http.StatusInternalServerError,
						err, string(debug.Stack()),
					)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
