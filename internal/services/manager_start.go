package services

import (
	"context"
	"errors"
)

// Start runs the HTTP server in the background and schedules the browser
// launch. It returns immediately; fatal server errors arrive on Errors.
func (m *Manager) Start(bgCtx context.Context) error {
	if m.server == nil {
		return errors.New("manager not initialized")
	}

	ctx, cancel := context.WithCancel(bgCtx)
	m.cancel = cancel

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		if err := m.server.Start(ctx); err != nil {
			m.logger.Error("HTTP server failed", "error", err)
			select {
			case m.errCh <- err:
			default:
			}
		}
	}()

	if m.launcher != nil {
		m.launcher.LaunchAfter(ctx, m.cfg.Launcher.Delay, m.cfg.Launcher.StartupURL)
	}
	return nil
}
