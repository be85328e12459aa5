package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// ConfirmFunc prompts the user for confirmation and returns true if confirmed.
type ConfirmFunc func(prompt string) (bool, error)

// NewConfirmFunc creates a ConfirmFunc using huh's interactive confirm component.
func NewConfirmFunc() ConfirmFunc {
	return func(prompt string) (bool, error) {
		var result bool
		err := huh.NewConfirm().
			Title(prompt).
			Value(&result).
			Run()
		return result, err
	}
}

// AlwaysYes returns a ConfirmFunc that always confirms.
func AlwaysYes() ConfirmFunc {
	return func(_ string) (bool, error) {
		return true, nil
	}
}

// PromptFunc prompts the user for free-text input and returns the response.
type PromptFunc func(prompt string) (string, error)

// NewPromptFunc creates a PromptFunc using huh's interactive input component.
func NewPromptFunc() PromptFunc {
	return func(prompt string) (string, error) {
		var result string
		err := huh.NewInput().
			Title(prompt).
			Value(&result).
			Run()
		return result, err
	}
}

// PromptWithDefaultFunc prompts for input pre-filled with a default value.
type PromptWithDefaultFunc func(prompt, def string) (string, error)

// NewPromptWithDefaultFunc creates a PromptWithDefaultFunc using huh's input
// component with the default already typed in.
func NewPromptWithDefaultFunc() PromptWithDefaultFunc {
	return func(prompt, def string) (string, error) {
		result := def
		err := huh.NewInput().
			Title(prompt).
			Value(&result).
			Run()
		return result, err
	}
}

// SelectFunc prompts the user to select one option from a list. Returns 0-based index.
type SelectFunc func(title string, options []string) (int, error)

// NewSelectFunc creates a SelectFunc using huh's interactive select component.
func NewSelectFunc() SelectFunc {
	return func(title string, options []string) (int, error) {
		var result int
		opts := make([]huh.Option[int], len(options))
		for i, o := range options {
			opts[i] = huh.NewOption(o, i)
		}
		err := huh.NewSelect[int]().
			Title(title).
			Options(opts...).
			Value(&result).
			Run()
		return result, err
	}
}

// PromptKit bundles all prompt function types for dependency injection.
type PromptKit struct {
	Prompt            PromptFunc
	PromptWithDefault PromptWithDefaultFunc
	Confirm           ConfirmFunc
	Select            SelectFunc
}

// NewPromptKit creates a PromptKit with huh-based interactive implementations.
func NewPromptKit() PromptKit {
	return PromptKit{
		Prompt:            NewPromptFunc(),
		PromptWithDefault: NewPromptWithDefaultFunc(),
		Confirm:           NewConfirmFunc(),
		Select:            NewSelectFunc(),
	}
}

// NewLinePromptKit creates a PromptKit that reads plain lines from in and
// writes prompts to out. It is used when stdin is not a terminal.
func NewLinePromptKit(in io.Reader, out io.Writer) PromptKit {
	lr := &lineReader{r: bufio.NewReader(in), w: out}
	return PromptKit{
		Prompt:            lr.prompt,
		PromptWithDefault: lr.promptWithDefault,
		Confirm:           lr.confirm,
		Select:            lr.choose,
	}
}

// promptKitFor picks the huh kit on a terminal and the line kit otherwise.
func promptKitFor(cmd *cobra.Command) PromptKit {
	if f, ok := cmd.InOrStdin().(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return NewPromptKit()
	}
	return NewLinePromptKit(cmd.InOrStdin(), cmd.OutOrStdout())
}

type lineReader struct {
	r *bufio.Reader
	w io.Writer
}

func (lr *lineReader) readLine() (string, error) {
	line, err := lr.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (lr *lineReader) prompt(prompt string) (string, error) {
	_, _ = fmt.Fprintf(lr.w, "%s: ", prompt)
	return lr.readLine()
}

func (lr *lineReader) promptWithDefault(prompt, def string) (string, error) {
	_, _ = fmt.Fprintf(lr.w, "%s [%s]: ", prompt, def)
	line, err := lr.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// confirm treats EOF and an empty answer as "no".
func (lr *lineReader) confirm(prompt string) (bool, error) {
	_, _ = fmt.Fprintf(lr.w, "%s [y/N] ", prompt)
	line, err := lr.readLine()
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes", "j", "ja":
		return true, nil
	}
	return false, nil
}

func (lr *lineReader) choose(title string, options []string) (int, error) {
	_, _ = fmt.Fprintln(lr.w, title)
	for i, o := range options {
		_, _ = fmt.Fprintf(lr.w, "  %d) %s\n", i+1, o)
	}
	_, _ = fmt.Fprint(lr.w, "> ")

	line, err := lr.readLine()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(options) {
		return 0, fmt.Errorf("invalid choice %q (expected 1-%d)", line, len(options))
	}
	return n - 1, nil
}
