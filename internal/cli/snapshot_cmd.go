package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/overwatch/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSnapshotCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Export or import the full data set",
	}

	export := &cobra.Command{
		Use:   "export [file]",
		Short: "Write a snapshot (stdout when no file given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if len(args) == 0 {
				return app.Snapshots.Export(ctx, os.Stdout)
			}

			f, err := os.Create(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			if err := app.Snapshots.Export(ctx, f); err != nil {
				return err
			}
			fmt.Printf("%s %s\n", formatter.StyleGreen.Render("exported"), args[0])
			return nil
		},
	}

	doImport := &cobra.Command{
		Use:   "import <file>",
		Short: "Load a snapshot, replacing current data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			result, err := app.Snapshots.Import(cmd.Context(), f)
			if err != nil {
				return fmt.Errorf("import rejected: %w", err)
			}

			fmt.Printf("%s %d logs, %d subjects, %d slots\n",
				formatter.StyleGreen.Render("imported"),
				result.LogCount, result.SubjectCount, result.SlotCount)
			return nil
		},
	}

	cmd.AddCommand(export, doImport)
	return cmd
}
