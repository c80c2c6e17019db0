package main

import (
	"log/slog"

	"github.com/agentbridge/agentbridge/internal/config"
	"github.com/agentbridge/agentbridge/internal/middleware"
)

// buildMiddleware creates and configures the middleware stack.
// Recovery sits innermost so panics are converted after the request is
// identified and logged.
func buildMiddleware(logger *slog.Logger, cfg *config.Config) middleware.System {
	middlewareSys := middleware.New()
	middlewareSys.Use(middleware.RequestID())
	middlewareSys.Use(middleware.Logger(logger))
	middlewareSys.Use(middleware.CORS(&cfg.CORS))
	middlewareSys.Use(middleware.Recover(logger))
	return middlewareSys
}
