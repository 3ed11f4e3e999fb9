package root

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/engine"
	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/ui"
)

var monthNames = []string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

func newCalendarCmd() *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the month grid of marked days",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tracker, _, cleanup, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			now := tracker.Now()
			if year == 0 {
				year = now.Year()
			}
			if month == 0 {
				month = int(now.Month())
			}
			if month < 1 || month > 12 {
				return fmt.Errorf("invalid month %d", month)
			}

			grid := engine.MonthGrid(tracker.Data(), year, month-1)
			fmt.Fprintln(cmd.OutOrStdout(), renderMonth(year, month, grid))
			return nil
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "Year (default: current)")
	cmd.Flags().IntVarP(&month, "month", "m", 0, "Month 1-12 (default: current)")
	return cmd
}

func renderMonth(year, month int, grid map[int]string) string {
	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconCalendar, fmt.Sprintf("%s %d", monthNames[month-1], year)))
	b.WriteString("\n")
	b.WriteString(ui.Muted.Render(strings.Join(engine.DayNames, " ")))
	b.WriteString("\n")

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	col := int(first.Weekday())
	b.WriteString(strings.Repeat("    ", col))
	for day := 1; day <= daysInMonth; day++ {
		b.WriteString(fmt.Sprintf("%2d", day))
		b.WriteString(ui.StatusGlyph(grid[day]))
		b.WriteString(" ")
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s completo  %s parcial  %s perdido\n",
		ui.StatusGlyph("done"), ui.StatusGlyph("partial"), ui.StatusGlyph("missed")))
	return b.String()
}
