package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Flyrell/zeitkonto/internal/entry"
	"github.com/Flyrell/zeitkonto/internal/schedule"
	"github.com/Flyrell/zeitkonto/internal/timetrack"
)

var dateOption = StringFlag{Name: "date", Shorthand: "d", Usage: "date (e.g. today, yesterday, monday, 2025-01-06, 06.01.2025)"}

var addWorkCmd = LeafCommand{
	Use:   "work",
	Short: "Log working time",
	StrFlags: []StringFlag{
		dateOption,
		{Name: "from", Usage: "start time (e.g. 06:00, 6.30, 7am)"},
		{Name: "to", Usage: "end time (e.g. 16:30, 4pm)"},
		{Name: "pause", Usage: "unpaid break (e.g. 30, 30m, 1h)"},
		{Name: "code", Shorthand: "c", Usage: "work code (e.g. 11, 70, 190)"},
		{Name: "project", Shorthand: "p", Usage: "project or site"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}
		date, _ := cmd.Flags().GetString("date")
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		pause, _ := cmd.Flags().GetString("pause")
		code, _ := cmd.Flags().GetString("code")
		project, _ := cmd.Flags().GetString("project")
		return runAddWork(cmd, a, date, from, to, pause, code, project, promptKitFor(cmd), time.Now)
	},
}.Build()

var addDriveCmd = LeafCommand{
	Use:   "drive",
	Short: "Log unpaid travel time (code 19)",
	StrFlags: []StringFlag{
		dateOption,
		{Name: "from", Usage: "departure time"},
		{Name: "to", Usage: "arrival time"},
		{Name: "project", Shorthand: "p", Usage: "route or destination"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}
		date, _ := cmd.Flags().GetString("date")
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		project, _ := cmd.Flags().GetString("project")
		return runAddDrive(cmd, a, date, from, to, project, promptKitFor(cmd), time.Now)
	},
}.Build()

var addVacationCmd = absenceCommand("vacation", "Log a vacation day", entry.TypeVacation)

var addSickCmd = absenceCommand("sick", "Log a sick day", entry.TypeSick)

func absenceCommand(use, short string, typ entry.Type) *cobra.Command {
	return LeafCommand{
		Use:      use,
		Short:    short,
		StrFlags: []StringFlag{dateOption},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}
			date, _ := cmd.Flags().GetString("date")
			return runAddAbsence(cmd, a, typ, date, time.Now)
		},
	}.Build()
}

var addCmd = GroupCommand{
	Use:   "add",
	Short: "Add a time entry",
	Subcommands: []*cobra.Command{
		addWorkCmd,
		addDriveCmd,
		addVacationCmd,
		addSickCmd,
	},
}.Build()

func runAddWork(
	cmd *cobra.Command,
	a *app,
	dateFlag, fromFlag, toFlag, pauseFlag, codeFlag, projectFlag string,
	pk PromptKit,
	nowFn func() time.Time,
) error {
	date, err := schedule.ParseDateRelative(dateFlag, nowFn())
	if err != nil {
		return err
	}

	from, to, err := promptClock(pk, fromFlag, toFlag)
	if err != nil {
		return err
	}

	pause, err := entry.ParsePause(pauseFlag)
	if err != nil {
		return err
	}

	code, err := resolveCode(pk, codeFlag)
	if err != nil {
		return err
	}

	e, err := entry.NewWork(date, from, to, pause, code, strings.TrimSpace(projectFlag))
	if err != nil {
		return err
	}
	return saveNew(cmd, a, e)
}

func runAddDrive(
	cmd *cobra.Command,
	a *app,
	dateFlag, fromFlag, toFlag, projectFlag string,
	pk PromptKit,
	nowFn func() time.Time,
) error {
	date, err := schedule.ParseDateRelative(dateFlag, nowFn())
	if err != nil {
		return err
	}

	from, to, err := promptClock(pk, fromFlag, toFlag)
	if err != nil {
		return err
	}

	e, err := entry.NewDrive(date, from, to, strings.TrimSpace(projectFlag))
	if err != nil {
		return err
	}
	return saveNew(cmd, a, e)
}

func runAddAbsence(cmd *cobra.Command, a *app, typ entry.Type, dateFlag string, nowFn func() time.Time) error {
	date, err := schedule.ParseDateRelative(dateFlag, nowFn())
	if err != nil {
		return err
	}

	e, err := entry.NewAbsence(typ, date)
	if err != nil {
		return err
	}
	if e.NetDuration == 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n",
			Warning(fmt.Sprintf("%s is not a workday, the entry counts 0h", schedule.FormatDayLabel(date))))
	}
	return saveNew(cmd, a, e)
}

// promptClock asks for whichever of from/to was not given as a flag.
func promptClock(pk PromptKit, from, to string) (string, string, error) {
	var err error
	if strings.TrimSpace(from) == "" {
		if from, err = pk.Prompt("From (e.g. 06:00)"); err != nil {
			return "", "", err
		}
	}
	if strings.TrimSpace(to) == "" {
		if to, err = pk.Prompt("To (e.g. 16:30)"); err != nil {
			return "", "", err
		}
	}
	return from, to, nil
}

// resolveCode parses the --code flag or lets the user pick from the
// catalogue.
func resolveCode(pk PromptKit, flag string) (int, error) {
	flag = strings.TrimSpace(flag)
	if flag == "" {
		codes := entry.Codes()
		labels := make([]string, len(codes))
		for i, c := range codes {
			labels[i] = c.Label
		}
		idx, err := pk.Select("Work code", labels)
		if err != nil {
			return 0, err
		}
		return codes[idx].ID, nil
	}

	code, err := strconv.Atoi(flag)
	if err != nil || !entry.KnownCode(code) {
		return 0, fmt.Errorf("unknown work code %q", flag)
	}
	return code, nil
}

// saveNew persists a new entry and prints a one-line confirmation. Logging
// onto a holiday is allowed but noted.
func saveNew(cmd *cobra.Command, a *app, e entry.TimeEntry) error {
	ctx := commandContext(cmd)
	if err := a.store.Put(ctx, entry.Stored(e)); err != nil {
		return err
	}
	a.log.Debug(ctx, "entry added", "id", e.ID, "type", e.Type, "date", e.Date)

	w := cmd.OutOrStdout()
	d, _ := e.Day()
	if name, ok := a.calendar.Name(d); ok {
		_, _ = fmt.Fprintf(w, "%s\n", Info(fmt.Sprintf("%s is a public holiday (%s)", schedule.FormatDayLabel(d), name)))
	}
	_, _ = fmt.Fprintf(w, "added %s entry %s (%s, %s, %s)\n",
		strings.ToLower(kindLabel(e)),
		Silent(e.ID.Short()),
		schedule.FormatDayLabel(d),
		timeLabel(e),
		Primary(schedule.FormatDuration(timetrack.Minutes(e))),
	)
	return nil
}
