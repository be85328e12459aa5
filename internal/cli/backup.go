package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var backupCmd = LeafCommand{
	Use:   "backup",
	Short: "Write a backup of all entries to the backup directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}
		return runBackup(cmd, a, time.Now)
	},
}.Build()

func runBackup(cmd *cobra.Command, a *app, nowFn func() time.Time) error {
	dir := a.settings.BackupDirIn(a.dataDir)
	path, err := a.backupService(nowFn).Export(commandContext(cmd), dir)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s\n", path)
	return nil
}
