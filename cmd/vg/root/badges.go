package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Cosmos506/Gamification-life/internal/engine"
	"github.com/Cosmos506/Gamification-life/internal/ui"
)

func newBadgesCmd(g *globalFlags) *cobra.Command {
	var onlyUnlocked bool

	cmd := &cobra.Command{
		Use:   "badges",
		Short: "Show the badge board",
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
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, fmt.Sprintf("Badges %d/%d", rep.Unlocked, len(rep.Badges))))
			for _, b := range rep.Badges {
				if onlyUnlocked && !b.Unlocked {
					continue
				}
				fmt.Fprintf(out, "%s %s %s\n", ui.BadgeLine(b), ui.SourceText(b.Source), ui.Muted.Render("["+b.ID+"]"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&onlyUnlocked, "unlocked", false, "only show unlocked badges")
	return cmd
}

func newBadgeCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "badge",
		Short: "Manage custom badges",
	}
	cmd.AddCommand(
		newBadgeAddManualCmd(g),
		newBadgeAddAutoCmd(g),
		newBadgeToggleCmd(g),
		newBadgeRmCmd(g),
		newBadgeKindsCmd(),
	)
	return cmd
}

func newBadgeAddManualCmd(g *globalFlags) *cobra.Command {
	var cond string

	cmd := &cobra.Command{
		Use:   "add-manual <name>",
		Short: "Add a badge you validate by hand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := g.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			b, err := svc.AddManualBadge(ctx, args[0], cond)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s badge %s %s\n", ui.IconPlus, b.Name, ui.Muted.Render("["+b.ID+"]"))
			return nil
		},
	}

	cmd.Flags().StringVar(&cond, "cond", "", "condition shown while locked")
	return cmd
}

func newBadgeAddAutoCmd(g *globalFlags) *cobra.Command {
	var rule engine.BadgeRule
	var kind string

	cmd := &cobra.Command{
		Use:   "add-auto <name>",
		Short: "Add a badge unlocked by a rule (see 'vg badge kinds')",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if kind == "" {
				return errors.New("--kind is required")
			}
			rule.Kind = engine.BadgeKind(kind)

			ctx := cmd.Context()
			svc, cleanup, err := g.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			b, err := svc.AddAutoBadge(ctx, args[0], rule)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s badge %s (%s) %s\n", ui.IconPlus, b.Name, b.Rule.Kind, ui.Muted.Render("["+b.ID+"]"))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "rule kind")
	cmd.Flags().StringVar(&rule.ActionID, "action", "", "action id")
	cmd.Flags().StringSliceVar(&rule.Actions, "actions", nil, "action ids (combo_actions)")
	cmd.Flags().IntVar(&rule.Count, "count", 0, "count threshold")
	cmd.Flags().IntVar(&rule.XP, "xp", 0, "XP threshold")
	cmd.Flags().IntVar(&rule.Days, "days", 0, "days threshold")
	cmd.Flags().IntVar(&rule.Weeks, "weeks", 0, "weeks threshold")
	cmd.Flags().IntVar(&rule.Streak, "streak", 0, "streak threshold")
	cmd.Flags().IntVar(&rule.Months, "months", 0, "months threshold")
	return cmd
}

func newBadgeToggleCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <badgeId>",
		Short: "Validate or unvalidate a manual badge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := g.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			b, err := svc.ToggleBadge(ctx, args[0])
			if err != nil {
				return err
			}
			state := ui.Muted.Render("verrouillé")
			if b.Validated {
				state = ui.Good.Render("validé")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", b.Name, state)
			return nil
		},
	}
}

func newBadgeRmCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <badgeId>",
		Short: "Remove a custom badge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := g.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.RemoveBadge(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("badge supprimé"))
			return nil
		},
	}
}

// kindFlags lists the flags each rule kind reads.
var kindFlags = map[engine.BadgeKind]string{
	engine.KindActionCount:           "--action --count",
	engine.KindTotalXP:               "--xp",
	engine.KindDaysWith6Plus:         "--days",
	engine.KindConsecutiveDays:       "--days",
	engine.KindBeforeNoon:            "",
	engine.KindWeeksWithAction:       "--action --weeks",
	engine.KindLongestStreak:         "--streak (or --days)",
	engine.KindWeeklyXP:              "--xp",
	engine.KindDistinctActionsPerDay: "--count --days",
	engine.KindComboActions:          "--actions --days",
	engine.KindMultiMonthsAction:     "--action --months",
	engine.KindMonthlyTotalCount:     "--action --count",
}

func newBadgeKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List automatic rule kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, k := range engine.Kinds {
				fmt.Fprintf(out, "- %s %s\n", ui.Key.Render(string(k)), ui.Muted.Render(strings.TrimSpace(kindFlags[k])))
			}
			return nil
		},
	}
}
