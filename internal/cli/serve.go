package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/localplatform/localplatform/internal/config"
	"github.com/localplatform/localplatform/internal/launcher"
	"github.com/localplatform/localplatform/internal/logging"
	"github.com/localplatform/localplatform/internal/services"
	"github.com/spf13/cobra"
)

func serve(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := config.LoadConfig(opts.ConfigDir)
	if err != nil {
		return err
	}
	if err := cfg.ApplyOverrides(opts.overrides()); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		return err
	}
	defer func() {
		if err := logging.Shutdown(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}()

	printBanner(cmd.OutOrStdout(), cfg)

	mgr := services.NewManager(cfg, services.Options{
		Notifier: newNotifier(cmd.ErrOrStderr()),
		Logger:   slog.Default(),
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := mgr.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}
	if err := mgr.Start(context.Background()); err != nil {
		return err
	}

	var runErr error
	select {
	case <-ctx.Done():
		slog.Info("Shutting down services...")
	case runErr = <-mgr.Errors():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	mgr.Shutdown(shutdownCtx)

	slog.Info("All services stopped.")
	return runErr
}

func printBanner(w io.Writer, cfg *config.Config) {
	title := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.Faint)

	title.Fprintln(w, "localplatform")
	fmt.Fprintf(w, "  %s %s\n", dim.Sprint("listening"), cfg.Server.BaseURL())
	fmt.Fprintf(w, "  %s %s\n", dim.Sprint("data dir "), cfg.Storage.DataDir)
	if cfg.Lifecycle.Enabled {
		fmt.Fprintf(w, "  %s\n", dim.Sprint("exits when the UI window closes"))
	}
}

func newNotifier(w io.Writer) launcher.Notifier {
	warn := color.New(color.FgYellow)
	return func(msg string) {
		warn.Fprintln(w, msg)
	}
}
