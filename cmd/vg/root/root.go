package root

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Cosmos506/Gamification-life/internal/ui"
)

const Version = "0.1.0"

// globalFlags are bound to the persistent flags of the root command.
type globalFlags struct {
	dbPath     string
	configPath string
	logLevel   string
}

func NewRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "vg",
		Short:         "Vie Gamifiée, a local-first progression tracker",
		Long:          "Vie Gamifiée logs daily actions, turns them into XP and levels, and unlocks badges.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	cmd.PersistentFlags().StringVar(&g.dbPath, "db", "", "SQLite database path (overrides config and VG_DB)")
	cmd.PersistentFlags().StringVar(&g.configPath, "config", "", "config file (default ~/.vg.yaml)")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level (debug|info|warn|error)")

	cmd.AddCommand(
		newLogCmd(g),
		newEntriesCmd(g),
		newRmCmd(g),
		newClearCmd(g),
		newStatusCmd(g),
		newBadgesCmd(g),
		newActionCmd(g),
		newBadgeCmd(g),
		newSettingsCmd(g),
		newExportCmd(g),
		newImportCmd(g),
		newBoardCmd(g),
	)
	return cmd
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		stop()
		os.Exit(1)
	}
}
