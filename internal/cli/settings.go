package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Flyrell/zeitkonto/internal/settings"
)

var settingsGetCmd = LeafCommand{
	Use:   "get <key>",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}
		return runSettingsGet(cmd, a, args[0])
	},
}.Build()

var settingsSetCmd = LeafCommand{
	Use:   "set <key> <value>",
	Short: "Change and save one setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}
		return runSettingsSet(cmd, a, args[0], args[1])
	},
}.Build()

var settingsShowCmd = LeafCommand{
	Use:   "show",
	Short: "Print all settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}
		return runSettingsShow(cmd, a)
	},
}.Build()

var settingsCmd = GroupCommand{
	Use:   "settings",
	Short: "Read and change settings",
	Subcommands: []*cobra.Command{
		settingsGetCmd,
		settingsSetCmd,
		settingsShowCmd,
	},
}.Build()

func runSettingsGet(cmd *cobra.Command, a *app, key string) error {
	v, err := a.settings.Get(key)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}

func runSettingsSet(cmd *cobra.Command, a *app, key, value string) error {
	old, err := a.settings.Get(key)
	if err != nil {
		return err
	}
	if err := a.settings.Set(key, value); err != nil {
		return err
	}
	if err := settings.Save(a.dataDir, a.settings); err != nil {
		return err
	}
	updated, _ := a.settings.Get(key)
	a.log.Debug(commandContext(cmd), "setting changed", "key", key, "value", updated)

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s: %s → %s\n", key, Silent(displaySetting(old)), Primary(displaySetting(updated)))
	if key == "storage" && old != updated {
		_, _ = fmt.Fprintln(w, Warning("existing entries are not migrated; use export and import to move them"))
	}
	return nil
}

func runSettingsShow(cmd *cobra.Command, a *app) error {
	w := cmd.OutOrStdout()
	for _, key := range settings.Keys() {
		v, _ := a.settings.Get(key)
		_, _ = fmt.Fprintf(w, "%-18s %s\n", key, displaySetting(v))
	}
	_, _ = fmt.Fprintf(w, "%-18s %s\n", "data_dir", Silent(a.dataDir))
	return nil
}

func displaySetting(v string) string {
	if v == "" {
		return "(not set)"
	}
	return v
}
