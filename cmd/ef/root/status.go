package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/engine"
	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show streak, level and today's marking",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tracker, _, cleanup, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			data := tracker.Data()
			now := tracker.Now()
			out := cmd.OutOrStdout()

			name := "Estudante"
			if data.User != nil && data.User.Name != "" {
				name = data.User.Name
			}
			fmt.Fprintln(out, ui.Heading(ui.IconTarget, "ENEM Focus — "+name))

			level := engine.LevelForXP(data.XP)
			next := engine.XPForNextLevel(level)
			fmt.Fprintln(out, ui.LabelValue("Nível", fmt.Sprintf("%d — %s", level, engine.LevelTitle(level))))
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d / %d", data.XP, next)))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d (recorde %d)", ui.IconFire, data.Streak, data.LongestStreak)))
			fmt.Fprintln(out, ui.LabelValue("Dias estudados", data.TotalDays))

			if data.RecoveryMode {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconRecovery+" Modo recuperação: complete hoje para manter o streak"))
			}

			today := engine.TodayStatus(data, now)
			if today == "" {
				fmt.Fprintln(out, ui.LabelValue("Hoje", ui.Muted.Render("ainda não marcado")))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Hoje", ui.StatusText(today)))
			}

			fmt.Fprintln(out, ui.LabelValue("Horas na semana", fmt.Sprintf("%.1fh", engine.WeeklyHours(data, now))))
			fmt.Fprintln(out, ui.LabelValue("Conquistas", fmt.Sprintf("%d / %d", len(data.Achievements), len(engine.Catalog))))
			return nil
		},
	}

	return cmd
}
