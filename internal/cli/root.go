package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// skipApp marks commands that run without opening the data directory.
const skipApp = "skip-app"

var rootCmd = &cobra.Command{
	Use:           "zeitkonto",
	Short:         "Track working hours against the Austrian 38.5h week",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, ok := cmd.Annotations[skipApp]; ok {
			return nil
		}
		h := holderFrom(cmd.Context())
		if h == nil {
			return nil
		}

		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		workDir, _ := os.Getwd()
		verbose, _ := cmd.Flags().GetBool("verbose")

		a, err := openApp(homeDir, workDir, verbose, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		h.app = a
		a.runAutoBackup(cmd.Context(), time.Now)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.SetHelpFunc(colorizedHelpFunc())

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(holidaysCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	h := &appHolder{}
	defer h.close()

	err := rootCmd.ExecuteContext(withAppHolder(context.Background(), h))
	if err != nil {
		_, _ = rootCmd.ErrOrStderr().Write([]byte(Error("error: "+err.Error()) + "\n"))
	}
	return err
}
