package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Flyrell/zeitkonto/internal/entry"
)

var removeCmd = LeafCommand{
	Use:   "remove <id>",
	Short: "Remove an entry",
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
		return runRemove(cmd, a, args[0], confirm)
	},
}.Build()

func runRemove(cmd *cobra.Command, a *app, id string, confirm ConfirmFunc) error {
	if entry.IsDerivedID(id) {
		return fmt.Errorf("entry '%s': %w", id, entry.ErrDerivedRecord)
	}

	ctx := commandContext(cmd)
	all, err := a.store.All(ctx)
	if err != nil {
		return err
	}
	e, err := entry.Find(all, id)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "  id:      %s\n", Silent(string(e.ID)))
	printEntryDetail(w, e)

	confirmed, err := confirm("Remove this entry?")
	if err != nil {
		return err
	}
	if !confirmed {
		_, _ = fmt.Fprintln(w, "cancelled")
		return nil
	}

	if err := a.store.Delete(ctx, e.ID); err != nil {
		return err
	}
	a.log.Debug(ctx, "entry removed", "id", e.ID)

	_, _ = fmt.Fprintf(w, "removed entry %s\n", Silent(e.ID.Short()))
	return nil
}
