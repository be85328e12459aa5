package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

var completionCmd = newCompletionCmd()

func newCompletionCmd() *cobra.Command {
	cmd := LeafCommand{
		Use:         "completion [SHELL]",
		Short:       "Print the shell completion script",
		Args:        cobra.RangeArgs(0, 1),
		Annotations: map[string]string{skipApp: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := ""
			if len(args) > 0 {
				shell = args[0]
			} else if shell = shellFromEnv(); shell == "" {
				return fmt.Errorf("could not detect shell from $SHELL; pass one of bash, zsh, fish, powershell")
			}
			return runCompletion(cmd, shell)
		},
	}.Build()
	cmd.ValidArgs = completionShells
	return cmd
}

// shellFromEnv maps $SHELL to a supported shell name, or "".
func shellFromEnv() string {
	switch base := filepath.Base(os.Getenv("SHELL")); base {
	case "bash", "zsh", "fish":
		return base
	}
	return ""
}

func runCompletion(cmd *cobra.Command, shell string) error {
	root := cmd.Root()
	out := cmd.OutOrStdout()

	switch shell {
	case "bash":
		return root.GenBashCompletionV2(out, true)
	case "zsh":
		return root.GenZshCompletion(out)
	case "fish":
		return root.GenFishCompletion(out, true)
	case "powershell":
		return root.GenPowerShellCompletion(out)
	default:
		return fmt.Errorf("unsupported shell: %s (valid: bash, zsh, fish, powershell)", shell)
	}
}
