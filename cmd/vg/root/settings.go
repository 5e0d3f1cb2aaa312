package root

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Cosmos506/Gamification-life/internal/engine"
	"github.com/Cosmos506/Gamification-life/internal/ui"
)

func newSettingsCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show badge settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := g.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			s, err := svc.Settings(ctx)
			if err != nil {
				return err
			}
			printSettings(cmd, s)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key=value>...",
		Short: "Update settings (codeMasterLessons, regulariteDaysNeeded)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := parseSettings(args)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			svc, cleanup, err := g.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			s, err := svc.UpdateSettings(ctx, patch)
			if err != nil {
				return err
			}
			printSettings(cmd, s)
			return nil
		},
	})
	return cmd
}

func parseSettings(args []string) (engine.Settings, error) {
	var s engine.Settings
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok {
			return s, fmt.Errorf("expected key=value, got %q", arg)
		}
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return s, fmt.Errorf("%s: %q is not an integer", key, raw)
		}
		if v < 1 {
			return s, engine.ValidationError{Field: key, Reason: "must be >= 1"}
		}
		switch strings.TrimSpace(key) {
		case "codeMasterLessons":
			s.CodeMasterLessons = v
		case "regulariteDaysNeeded":
			s.RegulariteDaysNeeded = v
		default:
			return s, fmt.Errorf("unknown setting %q", key)
		}
	}
	return s, nil
}

func printSettings(cmd *cobra.Command, s engine.Settings) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Heading(ui.IconGear, "Réglages"))
	fmt.Fprintln(out, ui.LabelValue("codeMasterLessons", s.CodeMasterLessons))
	fmt.Fprintln(out, ui.LabelValue("regulariteDaysNeeded", s.RegulariteDaysNeeded))
}
