package cli

import (
	"fmt"
	"strings"

	"github.com/Flyrell/zeitkonto/internal/schedule"
	"github.com/Flyrell/zeitkonto/internal/timetrack"
)

const progressWidth = 30

// renderDashboard draws the month header and the week list. cursor is the
// highlighted week index, -1 for none.
func renderDashboard(data dashboardData, expanded map[int]bool, cursor int) string {
	var b strings.Builder
	t := data.totals

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s %d", schedule.MonthName(data.period.month), data.period.year)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Ist %s / Soll %s   Saldo %s\n",
		Primary(schedule.FormatDuration(t.ActualMinutes)),
		schedule.FormatDuration(t.TargetMinutes),
		balanceLabel(t.Balance()))
	fmt.Fprintf(&b, "%s %3.0f%%\n", progressBar(t.Progress(), progressWidth), t.Progress())
	b.WriteString(Silent(fmt.Sprintf("Fahrzeit %s · Feiertage %s",
		schedule.FormatDuration(t.DriveMinutes), schedule.FormatDuration(t.HolidayMinutes))))
	b.WriteString("\n\n")

	if len(data.weeks) == 0 {
		b.WriteString(Silent("No entries this month."))
		b.WriteString("\n")
		return b.String()
	}

	for i, wk := range data.weeks {
		marker := "▸"
		if expanded[wk.Week] {
			marker = "▾"
		}
		line := fmt.Sprintf("%s KW %-2d  %s - %s   Ist %8s  Soll %8s  Saldo %s",
			marker, wk.Week,
			wk.Monday.Format("02.01."), wk.Sunday.Format("02.01."),
			schedule.FormatDuration(wk.WorkMinutes),
			schedule.FormatDuration(wk.TargetMinutes),
			schedule.FormatSignedDuration(wk.Balance()))
		if wk.DriveMinutes > 0 {
			line += fmt.Sprintf("  Fahrzeit %s", schedule.FormatDuration(wk.DriveMinutes))
		}
		if i == cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")

		if !expanded[wk.Week] {
			continue
		}
		for _, d := range wk.Days {
			renderDay(&b, d)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderDay(b *strings.Builder, d timetrack.DayGroup) {
	head := fmt.Sprintf("    %s  %s", schedule.FormatDayLabel(d.Date), schedule.FormatDuration(d.Minutes))
	if d.TargetMinutes > 0 {
		head += "  " + balanceLabel(d.Balance())
	}
	b.WriteString(head)
	b.WriteString("\n")
	for _, r := range d.Records {
		b.WriteString("      ")
		b.WriteString(entryLine(r))
		b.WriteString("\n")
	}
}

// progressBar renders pct (0-100) as a fixed-width bar.
func progressBar(pct float64, width int) string {
	filled := int(pct / 100 * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return Primary(strings.Repeat("█", filled)) + Silent(strings.Repeat("░", width-filled))
}
