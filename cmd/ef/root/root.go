package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/ui"
)

const Version = "0.1.0"

var debugLogs bool

var rootCmd = &cobra.Command{
	Use:           "ef",
	Short:         "ENEM Focus — local-first study-habit tracker",
	Long:          "ENEM Focus is a local-first CLI/TUI study tracker: weekly routine, daily streak with recovery grace, XP, levels and achievements.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().BoolVar(&debugLogs, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		newMarkCmd(),
		newStatusCmd(),
		newRoutineCmd(),
		newStatsCmd(),
		newCalendarCmd(),
		newAchievementsCmd(),
		newExportCmd(),
		newImportCmd(),
		newProfileCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
