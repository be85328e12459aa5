package cli

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Flyrell/zeitkonto/internal/holiday"
	"github.com/Flyrell/zeitkonto/internal/schedule"
)

var holidaysCmd = LeafCommand{
	Use:         "holidays",
	Short:       "List the Austrian public holidays of a year",
	Annotations: map[string]string{skipApp: "true"},
	StrFlags: []StringFlag{
		{Name: "year", Usage: "year (default: current year)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		yearFlag, _ := cmd.Flags().GetString("year")
		return runHolidays(cmd, yearFlag, time.Now)
	},
}.Build()

func runHolidays(cmd *cobra.Command, yearFlag string, nowFn func() time.Time) error {
	year := nowFn().Year()
	if yearFlag != "" {
		y, err := strconv.Atoi(yearFlag)
		if err != nil || y < 1583 || y > 9999 {
			return fmt.Errorf("invalid year: %s", yearFlag)
		}
		year = y
	}

	days := holiday.ForYear(year)
	dates := make([]string, 0, len(days))
	for d := range days {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s\n", headerStyle.Render(fmt.Sprintf("Feiertage %d", year)))
	for _, ds := range dates {
		d, err := schedule.ParseDay(ds)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%s %s  %s", schedule.ShortWeekday(d), d.Format("02.01.2006"), days[ds])
		if !schedule.IsWorkday(d) {
			line = Silent(line + "  (Wochenende)")
		}
		_, _ = fmt.Fprintln(w, line)
	}
	return nil
}
