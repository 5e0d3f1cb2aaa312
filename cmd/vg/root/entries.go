package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Cosmos506/Gamification-life/internal/ui"
)

func newEntriesCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "entries",
		Short: "List logged entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := g.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := svc.ListEntries(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(aucune entrée)"))
				return nil
			}
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Journal"))
			for _, e := range entries {
				line := fmt.Sprintf("%s  %s  +%d", e.Date, e.Label, e.Points)
				if e.Label == "" {
					line = fmt.Sprintf("%s  %s  +%d", e.Date, e.ActionID, e.Points)
				}
				if e.Notes != "" {
					line += "  " + ui.Muted.Render(e.Notes)
				}
				fmt.Fprintf(out, "- %s %s\n", line, ui.Muted.Render("["+e.ID+"]"))
			}
			return nil
		},
	}
}

func newRmCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <entryId>",
		Short: "Remove one entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := g.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.RemoveEntry(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("entrée supprimée"))
			return nil
		},
	}
}

func newClearCmd(g *globalFlags) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to clear the log without --yes")
			}
			ctx := cmd.Context()
			svc, cleanup, err := g.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			n, err := svc.ClearEntries(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d entrées supprimées\n", ui.IconWarn, n)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm")
	return cmd
}
