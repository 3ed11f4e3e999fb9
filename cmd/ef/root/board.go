package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/tui"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tracker, _, cleanup, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, tracker, cmd.OutOrStdout())
		},
	}
}
