package services

import (
	"context"
	"fmt"
	"runtime"

	"github.com/localplatform/localplatform/internal/docstore"
	"github.com/localplatform/localplatform/internal/gateway"
	"github.com/localplatform/localplatform/internal/gateway/rest"
	"github.com/localplatform/localplatform/internal/launcher"
	"github.com/localplatform/localplatform/internal/lifecycle"
	"github.com/localplatform/localplatform/internal/rawio"
	"github.com/localplatform/localplatform/internal/server"
)

// Init builds every component and registers routes. It must run before Start.
func (m *Manager) Init(_ context.Context) error {
	if err := m.cfg.EnsureDataDir(); err != nil {
		return err
	}

	m.server = server.New(m.cfg.Server, m.opts.Logger)

	restHandler, err := rest.NewHandler(
		rawio.New(nil),
		docstore.New(m.cfg.Storage.DataDir, nil),
		rest.WithOpener(launcher.NewOpener(runtime.GOOS)),
		rest.WithLogger(m.opts.Logger),
	)
	if err != nil {
		return fmt.Errorf("failed to create rest handler: %w", err)
	}

	gwOpts := []gateway.ServerOption{
		gateway.WithFrontend(m.cfg.Frontend.Dir),
		gateway.WithLogger(m.opts.Logger),
	}
	if m.cfg.Lifecycle.Enabled {
		m.lifecycle = lifecycle.New(lifecycle.Options{
			GraceDelay: m.cfg.Lifecycle.GraceDelay,
			Terminator: m.opts.Terminator,
			Logger:     m.opts.Logger,
		})
		gwOpts = append(gwOpts, gateway.WithLifecycle(lifecycle.NewHandler(m.lifecycle, lifecycle.HandlerConfig{
			PingInterval: m.cfg.Lifecycle.PingInterval,
		})))
	}
	gateway.NewServer(restHandler, gwOpts...).RegisterRoutes(m.server.HTTPMux())

	if m.cfg.Launcher.Enabled {
		finder := launcher.NewFinder(runtime.GOOS, m.cfg.Launcher.BrowserPath)
		m.launcher = launcher.New(finder, m.opts.Notifier, m.opts.Logger)
	}

	m.logger.Info("Services initialized",
		"data_dir", m.cfg.Storage.DataDir,
		"frontend_dir", m.cfg.Frontend.Dir,
		"lifecycle", m.cfg.Lifecycle.Enabled,
		"launcher", m.cfg.Launcher.Enabled,
	)
	return nil
}
