package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/engine"
	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "List unlocked achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tracker, _, cleanup, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			data := tracker.Data()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, fmt.Sprintf("Conquistas (%d/%d)", len(data.Achievements), len(engine.Catalog))))

			for _, a := range data.Achievements {
				fmt.Fprintf(out, "%s %s — %s %s\n", a.Icon, ui.Key.Render(a.Name), a.Description, ui.Muted.Render(a.UnlockedAt))
			}

			if !all {
				return nil
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.H2.Render(ui.IconLock+" Bloqueadas"))
			for _, a := range engine.Catalog {
				if data.HasAchievement(a.ID) {
					continue
				}
				fmt.Fprintf(out, "%s %s — %s\n", a.Icon, ui.Muted.Render(a.Name), ui.Muted.Render(a.Description))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Also list locked achievements")
	return cmd
}
