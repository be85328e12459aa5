package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestColorizeLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"section header", "Available Commands:", []string{"Available Commands:"}},
		{"command listing", "  report      Show or export the timesheet", []string{"report", "Show or export"}},
		{"flag line", "  -o, --output string   output file", []string{"--output", "output file"}},
		{"footer", `Use "zeitkonto [command] --help" for more information about a command.`, []string{"zeitkonto"}},
		{"plain", "Track working hours", []string{"Track working hours"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := colorizeLine(tt.line)
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
		})
	}
}

func TestColorizedHelpRootListsTargets(t *testing.T) {
	cmd := &cobra.Command{Use: "test-app", Short: "A test CLI app"}
	cmd.AddCommand(&cobra.Command{Use: "sub", Short: "A subcommand", Run: func(*cobra.Command, []string) {}})
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)

	colorizedHelpFunc()(cmd, nil)

	out := buf.String()
	assert.Contains(t, out, "test-app")
	assert.Contains(t, out, "Flags:")
	assert.Contains(t, out, "Mo  8h 30m")
	assert.Contains(t, out, "Fr  4h 30m")
	assert.Contains(t, out, "Woche 38h 30m")

	// The writer is restored afterwards.
	buf.Reset()
	cmd.Print("test")
	assert.Equal(t, "test", buf.String())
}

func TestColorizedHelpSubcommandOmitsTargets(t *testing.T) {
	root := &cobra.Command{Use: "test-app"}
	sub := &cobra.Command{Use: "sub", Short: "A subcommand", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(sub)
	buf := new(bytes.Buffer)
	sub.SetOut(buf)

	colorizedHelpFunc()(sub, nil)

	assert.Contains(t, buf.String(), "sub")
	assert.NotContains(t, buf.String(), "Woche")
}
