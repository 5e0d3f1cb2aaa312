package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Cosmos506/Gamification-life/internal/engine"
	"github.com/Cosmos506/Gamification-life/internal/ui"
)

func newStatusCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show level, progress and the recent XP chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := g.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			rep, err := svc.Report(ctx)
			if err != nil {
				return err
			}
			p := rep.Progression
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Progression"))
			fmt.Fprintln(out, ui.LabelValue("Niveau", p.Level))
			fmt.Fprintln(out, ui.LabelValue("Titre", p.Title))
			fmt.Fprintln(out, ui.LabelValue("XP totale", p.TotalXP))
			if p.Level >= rep.Thresholds.MaxLevel() {
				fmt.Fprintln(out, ui.LabelValue("Progression", ui.ProgressBar(1, 30)+" "+ui.Gold.Render("niveau maximal")))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Progression", fmt.Sprintf("%s %d/%d XP", ui.ProgressBar(p.ProgressFraction, 30), p.XPInLevel, p.XPForNext)))
			}
			fmt.Fprintln(out, ui.LabelValue("Badges", fmt.Sprintf("%d/%d", rep.Unlocked, len(rep.Badges))))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconChart+" "+fmt.Sprintf("XP des %d derniers jours", engine.ChartDays)))
			if len(p.Chart) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(aucune donnée)"))
				return nil
			}
			for _, line := range ui.ChartLines(p.Chart, 30) {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
