package root

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/storage"
	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/ui"
)

func newExportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a JSON backup of all data",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tracker, repo, cleanup, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			now := tracker.Now()
			if outPath == "" {
				outPath = storage.BackupFileName(now)
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create backup file: %w", err)
			}
			defer f.Close()

			if err := repo.Export(ctx, f, now); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconDone+" Backup salvo"), ui.Muted.Render(outPath))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output file (default: enem-focus-backup-<date>.json)")
	return cmd
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Restore data from a JSON backup (overwrites everything)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("backup file is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, repo, cleanup, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open backup file: %w", err)
			}
			defer f.Close()

			if err := repo.Import(ctx, f); err != nil {
				if errors.Is(err, storage.ErrInvalidBackup) {
					return fmt.Errorf("import failed, data untouched: %w", err)
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Backup restaurado"))
			return nil
		},
	}
}
