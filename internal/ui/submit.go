package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) submitCmd() *cobra.Command {
	var staffID string
	var name string
	var note string
	var slotIDs string
	var clear bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit shift preferences without the TUI",
		Long: `Load the schedule, replace the selection, and submit in one shot.

Slots are given as a comma-separated list of slot ids, for example
"2025-02-03_1,2025-02-04_2". With --clear and no --slots the recorded
selection is withdrawn entirely.

The backend tallies update asynchronously; counts shown by other
clients may lag by a few minutes.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if !clear && slotIDs == "" {
				return fmt.Errorf("nothing to do: pass --slots or --clear")
			}

			ctx := context.Background()
			if staffID != "" || name != "" || note != "" {
				profile := a.sess.Profile()
				if staffID != "" {
					profile.StaffID = staffID
				}
				if name != "" {
					profile.Name = name
				}
				if note != "" {
					profile.Note = note
				}
				a.sess.SetProfile(profile)
			}

			if err := a.sess.Load(ctx); err != nil {
				return fmt.Errorf("loading schedule: %w", err)
			}

			a.sess.Clear()
			if slotIDs != "" {
				known := make(map[string]bool)
				for _, s := range a.sess.Slots() {
					known[s.ID] = true
				}
				for _, id := range strings.Split(slotIDs, ",") {
					id = strings.TrimSpace(id)
					if id == "" {
						continue
					}
					if !known[id] {
						return fmt.Errorf("unknown slot id %q", id)
					}
					a.sess.Toggle(id)
				}
			}

			if err := a.sess.Submit(ctx); err != nil {
				fmt.Println(formatError("送出失敗"))
				return err
			}

			fmt.Printf("%s 已送出 %d 個時段。\n", formatSelected("✓"), a.sess.SelectedCount())
			fmt.Println(formatMuted("統計與人數顯示會在數分鐘內更新。"))
			return nil
		},
	}

	cmd.Flags().StringVar(&staffID, "staff", "", "Staff id (defaults to the remembered one)")
	cmd.Flags().StringVar(&name, "name", "", "Display name (defaults to the remembered one)")
	cmd.Flags().StringVar(&note, "note", "", "Optional note for the scheduler")
	cmd.Flags().StringVar(&slotIDs, "slots", "", "Comma-separated slot ids to select")
	cmd.Flags().BoolVar(&clear, "clear", false, "Withdraw the recorded selection")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
