package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/engine"
	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/ui"
)

func newMarkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mark <done|partial|missed>",
		Short: "Mark how today's study went",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("status is required (done|partial|missed)")
			}
			if _, err := engine.ParseStatus(args[0]); err != nil {
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			status, _ := engine.ParseStatus(args[0])

			tracker, _, cleanup, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := tracker.MarkDay(ctx, status)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch status {
			case engine.StatusDone:
				fmt.Fprintf(out, "%s %s %s\n",
					ui.Good.Render(ui.IconDone+" Dia completo"),
					ui.Muted.Render(res.Date),
					ui.Muted.Render(fmt.Sprintf("(%.1fh, +%d XP)", res.HoursStudied, res.XPAwarded)))
			case engine.StatusPartial:
				fmt.Fprintf(out, "%s %s %s\n",
					ui.Warn.Render(ui.IconPartial+" Dia parcial"),
					ui.Muted.Render(res.Date),
					ui.Muted.Render(fmt.Sprintf("(%.1fh, +%d XP)", res.HoursStudied, res.XPAwarded)))
			case engine.StatusMissed:
				fmt.Fprintf(out, "%s %s\n",
					ui.Bad.Render(ui.IconMissed+" Dia perdido"),
					ui.Muted.Render(res.Date))
				if tracker.Data().RecoveryMode {
					fmt.Fprintln(out, ui.H2.Render(ui.IconRecovery+" Modo recuperação ativado — complete amanhã para manter o streak"))
				}
			}

			if res.StreakSaved {
				fmt.Fprintln(out, ui.Good.Render(ui.IconRecovery+" Streak salvo pela recuperação!"))
			}
			if status != engine.StatusMissed {
				fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d", ui.IconFire, res.Streak)))
			}
			if res.LevelUp {
				fmt.Fprintf(out, "%s %s\n", ui.BadgeLevelUp, ui.Muted.Render(fmt.Sprintf("nível %d → %d", res.LevelBefore, res.LevelAfter)))
			}
			for _, a := range res.NewAchievements {
				fmt.Fprintf(out, "%s %s %s — %s\n", ui.Gold.Render(ui.IconTrophy+" Conquista!"), a.Icon, ui.Key.Render(a.Name), ui.Muted.Render(a.Description))
			}
			if res.Message != "" {
				fmt.Fprintln(out, ui.Muted.Render(res.Message))
			}
			return nil
		},
	}

	return cmd
}
