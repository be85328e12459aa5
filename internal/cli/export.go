package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Flyrell/zeitkonto/internal/backup"
)

var exportCmd = LeafCommand{
	Use:   "export",
	Short: "Export all entries as JSON",
	StrFlags: []StringFlag{
		{Name: "output", Shorthand: "o", Usage: "output file or directory, - for stdout (default: current directory)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}
		outputFlag, _ := cmd.Flags().GetString("output")
		return runExport(cmd, a, outputFlag, time.Now)
	},
}.Build()

func runExport(cmd *cobra.Command, a *app, outputFlag string, nowFn func() time.Time) error {
	ctx := commandContext(cmd)
	svc := a.backupService(nowFn)

	if outputFlag == "-" {
		return svc.ExportTo(ctx, cmd.OutOrStdout())
	}

	path, err := reportOutputPath(outputFlag, backup.ExportFileName(nowFn()))
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := svc.ExportTo(ctx, f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	a.log.Info(ctx, "export written", "path", path)

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported entries to %s\n", path)
	return nil
}
