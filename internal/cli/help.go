package cli

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Flyrell/zeitkonto/internal/schedule"
)

var (
	// "Usage:", "Available Commands:", "Flags:"
	sectionHeaderRe = regexp.MustCompile(`^[A-Z][A-Za-z ]+:$`)
	// "  name   description"
	commandListingRe = regexp.MustCompile(`^( {2})(\S+)(\s{2,}.*)$`)
	// "  -o, --output string   description"
	flagLineRe = regexp.MustCompile(`^( +)(-.+?)( {2,}.*)$`)
	footerRe   = regexp.MustCompile(`^Use "`)
)

// colorizedHelpFunc renders cobra's usage text with colours. The root
// command's help also lists the weekly target table.
func colorizedHelpFunc() func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		origOut := cmd.OutOrStdout()

		var buf strings.Builder
		cmd.SetOut(&buf)
		cmd.InitDefaultHelpFlag()
		_ = cmd.Usage()
		cmd.SetOut(origOut)

		var out strings.Builder
		for _, line := range strings.Split(buf.String(), "\n") {
			out.WriteString(colorizeLine(line))
			out.WriteString("\n")
		}
		if !cmd.HasParent() {
			out.WriteString("\n")
			out.WriteString(targetTable())
		}
		cmd.Print(strings.TrimRight(out.String(), "\n") + "\n")
	}
}

func colorizeLine(line string) string {
	trimmed := strings.TrimSpace(line)
	switch {
	case sectionHeaderRe.MatchString(trimmed):
		return Info(line)
	case footerRe.MatchString(trimmed):
		return Silent(line)
	}
	if m := flagLineRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + m[3]
	}
	if m := commandListingRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + m[3]
	}
	return line
}

// targetTable lists the Soll per weekday and the weekly total.
func targetTable() string {
	var b strings.Builder
	b.WriteString(Info("Soll:"))
	b.WriteString("\n")
	monday := schedule.WeekStart(time.Now())
	total := 0
	for i := 0; i < 5; i++ {
		d := monday.AddDate(0, 0, i)
		total += schedule.TargetMinutes(d)
		fmt.Fprintf(&b, "  %s  %s\n", schedule.ShortWeekday(d), schedule.FormatDuration(schedule.TargetMinutes(d)))
	}
	fmt.Fprintf(&b, "  %s\n", Silent("Woche "+schedule.FormatDuration(total)))
	return b.String()
}
