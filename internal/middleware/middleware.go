// Package middleware provides the HTTP middleware stack: request
// identification, request logging, CORS, and panic recovery.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// System collects middleware and applies them to a handler in
// registration order (the first registered runs outermost).
type System interface {
	Use(mw Middleware)
	Apply(handler http.Handler) http.Handler
}

type system struct {
	stack []Middleware
}

// New creates an empty middleware system.
func New() System {
	return &system{}
}

func (s *system) Use(mw Middleware) {
	s.stack = append(s.stack, mw)
}

func (s *system) Apply(handler http.Handler) http.Handler {
	for i := len(s.stack) - 1; i >= 0; i-- {
		handler = s.stack[i](handler)
	}
	return handler
}
