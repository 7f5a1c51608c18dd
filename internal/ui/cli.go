package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pinyuchen/shiftwish/internal/config"
	"github.com/pinyuchen/shiftwish/internal/session"
	"github.com/pinyuchen/shiftwish/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	sess   *session.Session
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging
}

// NewApp creates a new CLI application with the given session and config.
func NewApp(sess *session.Session, cfg *config.Config) *App {
	a := &App{sess: sess, config: cfg}

	a.root = &cobra.Command{
		Use:   "shiftwish",
		Short: "A terminal client for the library shift-preference survey",
		Long: `Shiftwish is a terminal client for the shift-preference survey.

It loads the offerable shifts from the survey backend, shows them as a
weekly grid, and submits the slots you mark as preferred. Your staff id
and name are remembered locally between runs.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.RunWithDebug(a.sess, a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to shiftwish-debug.log)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.submitCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("shiftwish %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
