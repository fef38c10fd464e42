// Package services wires the backend components together and owns their
// start and shutdown order.
package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/localplatform/localplatform/internal/config"
	"github.com/localplatform/localplatform/internal/launcher"
	"github.com/localplatform/localplatform/internal/lifecycle"
	"github.com/localplatform/localplatform/internal/server"
)

type Options struct {
	// Terminator ends the process when the UI disconnects. Nil exits with status 0.
	Terminator lifecycle.Terminator
	// Notifier surfaces launcher messages to the user. May be nil.
	Notifier launcher.Notifier
	Logger   *slog.Logger
}

type Manager struct {
	cfg    *config.Config
	opts   Options
	logger *slog.Logger

	server    server.Service
	lifecycle *lifecycle.Controller
	launcher  *launcher.Launcher

	cancel context.CancelFunc
	errCh  chan error
	wg     sync.WaitGroup
}

func NewManager(cfg *config.Config, opts Options) *Manager {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Manager{
		cfg:    cfg,
		opts:   opts,
		logger: logger.With("component", "services"),
		errCh:  make(chan error, 1),
	}
}

// Errors delivers a fatal server error, if one occurs.
func (m *Manager) Errors() <-chan error {
	return m.errCh
}

// Lifecycle returns the lifecycle controller, or nil when disabled.
func (m *Manager) Lifecycle() *lifecycle.Controller {
	return m.lifecycle
}

// Addr returns the bound HTTP address once Start has bound the listener.
func (m *Manager) Addr() string {
	if m.server == nil {
		return ""
	}
	return m.server.Addr()
}
