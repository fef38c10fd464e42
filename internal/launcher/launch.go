package launcher

import (
	"context"
	"log/slog"
	"os/exec"
	"time"
)

// Notifier tells the user something the log alone might not surface.
type Notifier func(msg string)

// Launcher opens the UI in a browser window.
type Launcher struct {
	finder *Finder
	start  func(argv []string) error
	notify Notifier
	logger *slog.Logger
}

// New returns a Launcher. notify may be nil.
func New(finder *Finder, notify Notifier, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{
		finder: finder,
		start:  startDetached,
		notify: notify,
		logger: logger.With("component", "launcher"),
	}
}

func startDetached(argv []string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the child so it does not linger as a zombie after it exits.
	go cmd.Wait()
	return nil
}

// Launch finds a browser and starts it on url. Failures are logged; the
// server keeps running either way. It reports whether a browser was started.
func (l *Launcher) Launch(url string) bool {
	exe, ok := l.finder.Find()
	if !ok {
		l.logger.Warn("No Chromium-based browser found", "url", url)
		if l.notify != nil {
			l.notify("No Chromium-based browser found. Open " + url + " manually.")
		}
		return false
	}

	argv := Command(exe, url)
	l.logger.Info("Opening app", "command", argv)
	if err := l.start(argv); err != nil {
		l.logger.Error("Failed to start browser", "executable", exe, "error", err)
		return false
	}
	return true
}

// LaunchAfter waits for delay so the listener can bind, then calls Launch.
// It returns immediately; ctx cancellation before the delay skips the launch.
func (l *Launcher) LaunchAfter(ctx context.Context, delay time.Duration, url string) {
	go func() {
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
		l.Launch(url)
	}()
}
