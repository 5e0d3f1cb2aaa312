package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Cosmos506/Gamification-life/internal/engine"
	"github.com/Cosmos506/Gamification-life/internal/tracker"
	"github.com/Cosmos506/Gamification-life/internal/ui"
)

func newActionCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "action",
		Short: "Manage the action catalogue",
	}
	cmd.AddCommand(
		newActionListCmd(g),
		newActionAddCmd(g),
		newActionEditCmd(g),
		newActionRmCmd(g),
	)
	return cmd
}

func newActionListCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List actions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := g.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			actions, err := svc.ListActions(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(actions) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(aucune action)"))
				return nil
			}
			for _, a := range actions {
				fmt.Fprintf(out, "- %s %s %s\n", ui.Key.Render(a.ID), a.Label, ui.Gold.Render(fmt.Sprintf("+%d", a.Points)))
			}
			return nil
		},
	}
}

func newActionAddCmd(g *globalFlags) *cobra.Command {
	var points int

	cmd := &cobra.Command{
		Use:   "add <label>",
		Short: "Add an action",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := g.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			a, err := svc.AddAction(ctx, args[0], points)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s +%d %s\n", ui.IconPlus, a.Label, a.Points, ui.Muted.Render("["+a.ID+"]"))
			return nil
		},
	}

	cmd.Flags().IntVarP(&points, "points", "p", 10, "points per occurrence")
	return cmd
}

func newActionEditCmd(g *globalFlags) *cobra.Command {
	var label string
	var points int

	cmd := &cobra.Command{
		Use:   "edit <actionId>",
		Short: "Change an action's label or points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := g.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			actions, err := svc.ListActions(ctx)
			if err != nil {
				return err
			}
			cur, ok := findAction(actions, args[0])
			if !ok {
				return tracker.NotFoundError{Kind: "action", ID: args[0]}
			}
			if cmd.Flags().Changed("label") {
				cur.Label = label
			}
			if cmd.Flags().Changed("points") {
				cur.Points = points
			}

			a, err := svc.UpdateAction(ctx, cur.ID, cur.Label, cur.Points)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s +%d\n", ui.IconDone, a.Label, a.Points)
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "new label")
	cmd.Flags().IntVarP(&points, "points", "p", 0, "new points")
	return cmd
}

func newActionRmCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <actionId>",
		Short: "Remove an action (logged entries are kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := g.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.RemoveAction(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("action supprimée"))
			return nil
		},
	}
}

func findAction(actions []engine.Action, id string) (engine.Action, bool) {
	for _, a := range actions {
		if a.ID == id {
			return a, true
		}
	}
	return engine.Action{}, false
}
