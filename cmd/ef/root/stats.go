package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/engine"
	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/ui"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show weekly hours and subject ranking",
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

			fmt.Fprintln(out, ui.Heading(ui.IconBook, "Estatísticas"))
			fmt.Fprintln(out, ui.LabelValue("Horas na semana", fmt.Sprintf("%.1fh", engine.WeeklyHours(data, now))))
			fmt.Fprintln(out, ui.LabelValue("Dias estudados", data.TotalDays))
			fmt.Fprintln(out, ui.LabelValue("Maior streak", fmt.Sprintf("%s %d", ui.IconFire, data.LongestStreak)))
			fmt.Fprintln(out, "")

			ranking := engine.TopSubjects(data, 5)
			fmt.Fprintln(out, ui.H2.Render(ui.IconStar+" Top matérias"))
			if len(ranking) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("sem dados ainda"))
				return nil
			}

			max := ranking[0].Hours
			for i, row := range ranking {
				bar := hoursBar(row.Hours, max, 20)
				fmt.Fprintf(out, "%d. %s %s %s\n", i+1, ui.Key.Render(padRight(row.Subject, 12)), bar, ui.Muted.Render(fmt.Sprintf("%.1fh", row.Hours)))
			}
			return nil
		},
	}
}

func hoursBar(value, max float64, width int) string {
	if max <= 0 {
		max = 1
	}
	filled := int(value / max * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(r))
}
