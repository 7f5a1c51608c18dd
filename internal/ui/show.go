package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pinyuchen/shiftwish/internal/session"
)

func (a *App) showCmd() *cobra.Command {
	var staffID string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the schedule and your recorded choices",
		Long: `Load the offerable shifts and print them as a plain text grid.

This is a quick read-only view without the interactive TUI. Slots you
already submitted are marked with a checkmark.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			ctx := context.Background()
			if staffID != "" {
				a.sess.SetProfile(session.Profile{StaffID: staffID})
			}
			if a.sess.Profile().StaffID == "" {
				return fmt.Errorf("no staff id: pass --staff or run the TUI once")
			}

			if err := a.sess.Load(ctx); err != nil {
				return fmt.Errorf("loading schedule: %w", err)
			}

			profile := a.sess.Profile()
			title := profile.StaffID
			if profile.Name != "" {
				title += " " + profile.Name
			}
			fmt.Printf("=== %s ===\n\n", formatHeader(title))

			policy := a.config.Policy()
			PrintGrid(a.sess.Rows(policy), policy.Columns(), a.sess.Selected)

			fmt.Printf("\n已勾選 %d 個時段\n", a.sess.SelectedCount())
			return nil
		},
	}

	cmd.Flags().StringVar(&staffID, "staff", "", "Staff id to load (defaults to the remembered one)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
