package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var importCmd = LeafCommand{
	Use:   "import <file>",
	Short: "Replace all entries with the contents of an export file",
	Args:  cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")
		confirm := promptKitFor(cmd).Confirm
		if yes {
			confirm = AlwaysYes()
		}
		return runImport(cmd, a, args[0], confirm, time.Now)
	},
}.Build()

func runImport(cmd *cobra.Command, a *app, path string, confirm ConfirmFunc, nowFn func() time.Time) error {
	ctx := commandContext(cmd)
	w := cmd.OutOrStdout()

	existing, err := a.store.All(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		ok, err := confirm(fmt.Sprintf("Replace all %d stored entries with %s?", len(existing), path))
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(w, "cancelled")
			return nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	p, err := a.backupService(nowFn).Import(ctx, f)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "imported %d entries\n", len(p.Entries))
	if p.User != nil && p.User.Name != "" {
		_, _ = fmt.Fprintf(w, "employee: %s\n", Primary(p.User.Name))
	}
	return nil
}
