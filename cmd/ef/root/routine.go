package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/engine"
	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/ui"
)

func newRoutineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routine",
		Short: "Manage the weekly study routine",
	}
	cmd.AddCommand(
		newRoutineListCmd(),
		newRoutineAddCmd(),
		newRoutineRemoveCmd(),
	)
	return cmd
}

func newRoutineListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the weekly routine",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tracker, _, cleanup, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			data := tracker.Data()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCalendar, "Rotina Semanal"))
			if len(data.Routine) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("nenhum bloco ainda — ef routine add"))
				return nil
			}

			for day := 0; day < 7; day++ {
				routine := data.RoutineFor(day)
				if routine == nil {
					continue
				}
				total := 0.0
				for _, b := range routine.Blocks {
					total += engine.CalcDurationHours(b.StartTime, b.EndTime)
				}
				fmt.Fprintf(out, "%s %s\n", ui.H2.Render(engine.DayNamesFull[day]), ui.Muted.Render(fmt.Sprintf("(%.1fh)", total)))
				for _, b := range routine.Blocks {
					fmt.Fprintf(out, "  %s–%s %s %s\n", b.StartTime, b.EndTime, ui.Key.Render(b.Subject), ui.Muted.Render(b.ID[:8]))
				}
			}
			return nil
		},
	}
}

func newRoutineAddCmd() *cobra.Command {
	var day int
	var subject, start, end string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a study block to a weekday",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tracker, _, cleanup, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			block, err := tracker.AddBlock(ctx, engine.AddBlockInput{
				Day:       day,
				Subject:   subject,
				StartTime: start,
				EndTime:   end,
			})
			if err != nil {
				if strings.Contains(err.Error(), "unknown subject") {
					return fmt.Errorf("%w\n  matérias: %s", err, strings.Join(engine.Subjects, ", "))
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s–%s\n",
				ui.Good.Render(ui.IconDone+" Bloco criado"),
				ui.Key.Render(block.Subject),
				ui.Muted.Render(engine.DayNamesFull[day]),
				block.StartTime, block.EndTime)
			return nil
		},
	}

	cmd.Flags().IntVarP(&day, "day", "d", 1, "Weekday (0=domingo … 6=sábado)")
	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Subject (from the ENEM catalog)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newRoutineRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <block-id>",
		Short: "Remove a study block (id prefix accepted)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("block id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tracker, _, cleanup, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id := resolveBlockID(tracker, args[0])
			if err := tracker.RemoveBlock(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Bloco removido"))
			return nil
		},
	}
}

// resolveBlockID expands a unique id prefix to the full block id; ambiguous
// or unknown prefixes are returned as-is and fail in RemoveBlock.
func resolveBlockID(tracker *engine.Tracker, prefix string) string {
	match := ""
	for _, r := range tracker.Data().Routine {
		for _, b := range r.Blocks {
			if !strings.HasPrefix(b.ID, prefix) {
				continue
			}
			if match != "" {
				return prefix
			}
			match = b.ID
		}
	}
	if match == "" {
		return prefix
	}
	return match
}
