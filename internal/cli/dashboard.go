package cli

import (
	"context"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Flyrell/zeitkonto/internal/timetrack"
)

var dashboardCmd = LeafCommand{
	Use:   "dashboard",
	Short: "Show the month's balance and calendar weeks",
	StrFlags: []StringFlag{
		{Name: "month", Usage: "month number 1-12 (default: current month)"},
		{Name: "year", Usage: "year (complementary to --month)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}
		monthFlag, _ := cmd.Flags().GetString("month")
		yearFlag, _ := cmd.Flags().GetString("year")
		return runDashboard(cmd, a, monthFlag, yearFlag, time.Now)
	},
}.Build()

// dashboardData is everything the dashboard shows for one month.
type dashboardData struct {
	period period
	totals timetrack.MonthTotals
	weeks  []timetrack.WeekGroup
}

func loadDashboard(ctx context.Context, a *app, p period) (dashboardData, error) {
	view, err := a.monthView(ctx, p.year, p.month)
	if err != nil {
		return dashboardData{}, err
	}
	return dashboardData{
		period: p,
		totals: timetrack.MonthStats(view, p.year, p.month),
		weeks:  timetrack.GroupByWeek(view, p.year, p.month),
	}, nil
}

func runDashboard(cmd *cobra.Command, a *app, monthFlag, yearFlag string, nowFn func() time.Time) error {
	p, err := parsePeriodFlags(monthFlag, "", yearFlag, nowFn())
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	data, err := loadDashboard(ctx, a, p)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	// Non-TTY fallback: print every week expanded
	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		return printStaticDashboard(out, data)
	}

	m := newDashboardModel(data, func(p period) (dashboardData, error) {
		return loadDashboard(ctx, a, p)
	})
	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out))
	_, err = prog.Run()
	return err
}

func printStaticDashboard(w io.Writer, data dashboardData) error {
	expanded := make(map[int]bool, len(data.weeks))
	for _, wk := range data.weeks {
		expanded[wk.Week] = true
	}
	_, err := io.WriteString(w, renderDashboard(data, expanded, -1))
	return err
}
