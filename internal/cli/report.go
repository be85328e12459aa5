package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Flyrell/zeitkonto/internal/entry"
	"github.com/Flyrell/zeitkonto/internal/schedule"
	"github.com/Flyrell/zeitkonto/internal/timetrack"
)

var reportCmd = LeafCommand{
	Use:   "report",
	Short: "Show or export the timesheet of a month or week",
	StrFlags: []StringFlag{
		{Name: "month", Usage: "month number 1-12 (default: current month)"},
		{Name: "week", Usage: "ISO week number 1-53 (narrows the month to one week)"},
		{Name: "year", Usage: "year (complementary to --month or --week)"},
		{Name: "export", Usage: "export format (pdf)"},
		{Name: "output", Shorthand: "o", Usage: "output file or directory for --export (default: current directory)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}
		monthFlag, _ := cmd.Flags().GetString("month")
		weekFlag, _ := cmd.Flags().GetString("week")
		yearFlag, _ := cmd.Flags().GetString("year")
		exportFlag, _ := cmd.Flags().GetString("export")
		outputFlag, _ := cmd.Flags().GetString("output")
		return runReport(cmd, a, monthFlag, weekFlag, yearFlag, exportFlag, outputFlag, time.Now)
	},
}.Build()

func runReport(
	cmd *cobra.Command,
	a *app,
	monthFlag, weekFlag, yearFlag, exportFlag, outputFlag string,
	nowFn func() time.Time,
) error {
	now := nowFn()

	if exportFlag != "" && exportFlag != "pdf" {
		return fmt.Errorf("unsupported export format %q (supported: pdf)", exportFlag)
	}

	p, err := parsePeriodFlags(monthFlag, weekFlag, yearFlag, now)
	if err != nil {
		return err
	}

	rep, err := buildReport(cmd, a, p)
	if err != nil {
		return err
	}

	if len(rep.Rows) == 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No time entries for %s.\n", p)
		return nil
	}

	if exportFlag == "" {
		printReport(cmd.OutOrStdout(), rep, a.settings.EmployeeName)
		return nil
	}

	outputPath, err := reportOutputPath(outputFlag, rep.FileName(a.settings.EmployeeName, now))
	if err != nil {
		return err
	}
	if err := renderTimesheetPDF(rep, a.settings.EmployeeName, outputPath); err != nil {
		return err
	}
	a.log.Info(commandContext(cmd), "timesheet exported", "path", outputPath, "rows", len(rep.Rows))

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported report to %s\n", outputPath)
	return nil
}

func buildReport(cmd *cobra.Command, a *app, p period) (timetrack.Report, error) {
	view, err := a.monthView(commandContext(cmd), p.year, p.month)
	if err != nil {
		return timetrack.Report{}, err
	}
	return timetrack.BuildReport(view, p.year, p.month, p.filter), nil
}

// reportOutputPath resolves --output: empty means the working directory, an
// existing directory gets the generated name, anything else is a file path.
func reportOutputPath(output, name string) (string, error) {
	if output == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(wd, name), nil
	}
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return filepath.Join(output, name), nil
	}
	return output, nil
}

const projectColWidth = 26

// printReport writes the timesheet as a plain table: one row per entry, the
// day balance on the last row of each workday, then the summary.
func printReport(w io.Writer, rep timetrack.Report, employee string) {
	_, _ = fmt.Fprintf(w, "%s\n", headerStyle.Render(fmt.Sprintf("Stundenzettel %s", rep.Title())))
	_, _ = fmt.Fprintf(w, "%s\n\n", Silent(fmt.Sprintf("%s · %s - %s",
		employee, rep.PeriodStart.Format("02.01.2006"), rep.PeriodEnd.Format("02.01.2006"))))

	_, _ = fmt.Fprintf(w, "%s\n", headerStyle.Render(fmt.Sprintf("%-10s  %-13s  %5s  %-4s  %-*s  %7s  %8s",
		"Datum", "Zeit", "Pause", "Code", projectColWidth, "Projekt", "Netto", "Saldo")))

	for _, row := range rep.Rows {
		e := row.Record.Entry
		date := ""
		if d, err := e.Day(); err == nil {
			date = schedule.FormatDayLabel(d)
		}

		pause := ""
		if e.Pause > 0 {
			pause = fmt.Sprintf("%dm", e.Pause)
		}
		code := ""
		if e.Code != nil {
			code = fmt.Sprintf("%02d", *e.Code)
		}
		project := rowLabel(e)
		balance := ""
		if row.ShowBalance {
			balance = balanceLabel(row.DayBalance)
		}

		line := fmt.Sprintf("%-10s  %-13s  %5s  %-4s  %-*s  %7s  %s",
			date, timeLabel(e), pause, code, projectColWidth, truncate(project, projectColWidth),
			schedule.FormatDuration(timetrack.Minutes(e)), balance)
		if e.IsDrive() {
			line = Silent(line)
		}
		_, _ = fmt.Fprintln(w, strings.TrimRight(line, " "))
	}

	s := rep.Summary
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "%-22s %s\n", "Arbeit:", schedule.FormatDuration(s.Work))
	_, _ = fmt.Fprintf(w, "%-22s %s\n", "Urlaub:", schedule.FormatDuration(s.Vacation))
	_, _ = fmt.Fprintf(w, "%-22s %s\n", "Krank:", schedule.FormatDuration(s.Sick))
	_, _ = fmt.Fprintf(w, "%-22s %s\n", "Feiertage:", schedule.FormatDuration(s.Holiday))
	_, _ = fmt.Fprintf(w, "%-22s %s\n", "Fahrzeit (unbezahlt):", Silent(schedule.FormatDuration(s.Drive)))
	_, _ = fmt.Fprintf(w, "%-22s %s\n", "Ist:", Primary(schedule.FormatDuration(s.TotalIst)))
	_, _ = fmt.Fprintf(w, "%-22s %s\n", "Soll:", schedule.FormatDuration(s.TotalTarget))
	_, _ = fmt.Fprintf(w, "%-22s %s\n", "Saldo:", balanceLabel(s.TotalSaldo))

	if !rep.Filter.IsWeek() && len(rep.AvailableWeeks) > 0 {
		weeks := make([]string, len(rep.AvailableWeeks))
		for i, wk := range rep.AvailableWeeks {
			weeks[i] = fmt.Sprintf("%d", wk)
		}
		_, _ = fmt.Fprintf(w, "\n%s\n", Silent("Wochen (--week): KW "+strings.Join(weeks, ", ")))
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// rowLabel is the project column, falling back to the entry category.
func rowLabel(e entry.TimeEntry) string {
	if e.Project != "" {
		return e.Project
	}
	return kindLabel(e)
}
