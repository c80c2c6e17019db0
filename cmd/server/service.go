package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/agentbridge/agentbridge/internal/config"
	"github.com/agentbridge/agentbridge/internal/routes"
	"github.com/agentbridge/agentbridge/internal/server"
	"github.com/agentbridge/agentbridge/pkg/logging"
)

// Service coordinates the lifecycle of all subsystems.
type Service struct {
	ctx        context.Context
	cancel     context.CancelFunc
	shutdownWg sync.WaitGroup

	server server.System
}

// NewService creates and initializes the service with all subsystems.
func NewService(cfg *config.Config) (*Service, error) {
	ctx, cancel := context.WithCancel(context.Background())

	logger := logging.New(&cfg.Logging)
	domain := NewDomain(cfg, logger)

	routeSys := routes.New(logger)
	registerRoutes(routeSys, domain, logger)

	middlewareSys := buildMiddleware(logger, cfg)
	handler := middlewareSys.Apply(routeSys.Build())

	serverSys := server.New(&cfg.Server, handler, logger)

	return &Service{
		ctx:    ctx,
		cancel: cancel,
		server: serverSys,
	}, nil
}

// Start begins all subsystems and returns when they are ready.
func (s *Service) Start() error {
	if err := s.server.Start(s.ctx, &s.shutdownWg); err != nil {
		return fmt.Errorf("server start failed: %w", err)
	}
	return nil
}

// Shutdown gracefully stops all subsystems within the provided context deadline.
func (s *Service) Shutdown(ctx context.Context) error {
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.shutdownWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %w", ctx.Err())
	}
}
