package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Cosmos506/Gamification-life/internal/tracker"
	"github.com/Cosmos506/Gamification-life/internal/ui"
)

func newLogCmd(g *globalFlags) *cobra.Command {
	var in tracker.EntryInput

	cmd := &cobra.Command{
		Use:   "log <actionId>",
		Short: "Log one occurrence of an action",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := g.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			in.ActionID = args[0]
			e, err := svc.AddEntry(ctx, in)
			if err != nil {
				return err
			}
			rep, err := svc.Report(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s %s %s\n", ui.IconDone, e.Label, ui.Gold.Render(fmt.Sprintf("+%d XP", e.Points)), ui.Muted.Render(e.Date))
			p := rep.Progression
			fmt.Fprintln(out, ui.LabelValue("Niveau", fmt.Sprintf("%d · %s (%d XP)", p.Level, p.Title, p.TotalXP)))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Date, "date", "", "entry date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&in.Notes, "notes", "", "free-text notes")
	cmd.Flags().BoolVar(&in.SansDistraction, "focus", false, "pomodoro done without distraction")
	cmd.Flags().BoolVar(&in.BeforeNoon, "morning", false, "done before noon")

	return cmd
}
