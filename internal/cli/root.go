// Package cli implements the localplatform command line.
package cli

import (
	"github.com/localplatform/localplatform/internal/config"
	"github.com/spf13/cobra"
)

// RootOptions holds the flags of the root command.
type RootOptions struct {
	ConfigDir string
	Port      int
	DataDir   string
	NoBrowser bool
}

func (o *RootOptions) overrides() config.Overrides {
	return config.Overrides{
		Port:      o.Port,
		DataDir:   o.DataDir,
		NoBrowser: o.NoBrowser,
	}
}

// NewRootCommand creates the root command: it serves the backend until
// interrupted or until the UI disconnects.
func NewRootCommand() *cobra.Command {
	return newRootCommand(serve)
}

func newRootCommand(run func(cmd *cobra.Command, opts *RootOptions) error) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "localplatform",
		Short: "Local backend for a desktop-style web UI",
		Long: "Serves file I/O, a JSON document store and host info on localhost, " +
			"opens the UI in a browser app window and exits when the UI disconnects.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigDir, "config-dir", config.DefaultConfigDir, "directory holding config.yml and config.local.yml")
	cmd.Flags().IntVar(&opts.Port, "port", 0, "HTTP port (overrides config and env)")
	cmd.Flags().StringVar(&opts.DataDir, "data-dir", "", "document store root (overrides config and env)")
	cmd.Flags().BoolVar(&opts.NoBrowser, "no-browser", false, "do not open a browser window on startup")

	return cmd
}
