package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/Flyrell/zeitkonto/internal/entry"
	"github.com/Flyrell/zeitkonto/internal/schedule"
	"github.com/Flyrell/zeitkonto/internal/settings"
	"github.com/Flyrell/zeitkonto/internal/timetrack"
)

var shellCmd = LeafCommand{
	Use:   "shell",
	Short: "Interactive menu for the dashboard, entries, reports and settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}
		return runShell(cmd, a, promptKitFor(cmd), time.Now)
	},
}.Build()

var dashboardMenu = []string{
	"Add entry",
	"Report",
	"Settings",
	"Previous month",
	"Next month",
	"Quit",
}

const (
	menuAdd = iota
	menuReport
	menuSettings
	menuPrev
	menuNext
	menuQuit
)

const backOption = "Back"

// runShell loops over the dashboard menu until the user quits or input ends.
// Failed actions are printed and the shell returns to the dashboard.
func runShell(cmd *cobra.Command, a *app, pk PromptKit, nowFn func() time.Time) error {
	now := nowFn()
	nav := newNavigator(period{year: now.Year(), month: now.Month(), filter: timetrack.Month()})
	w := cmd.OutOrStdout()

	for {
		if err := showDashboard(cmd, a, nav.period); err != nil {
			return err
		}

		choice, err := pk.Select("What next?", dashboardMenu)
		if err != nil {
			if endOfInput(err) {
				return nil
			}
			_, _ = fmt.Fprintln(w, Error(err.Error()))
			continue
		}

		var screen func() error
		switch choice {
		case menuAdd:
			screen = func() error { return shellAdd(cmd, a, pk, nowFn) }
			err = nav.Go(viewAdd)
		case menuReport:
			screen = func() error { return shellReport(cmd, a, nav.period, pk, nowFn) }
			err = nav.Go(viewReport)
		case menuSettings:
			screen = func() error { return shellSettings(cmd, a, pk) }
			err = nav.Go(viewSettings)
		case menuPrev:
			nav.PrevMonth()
			continue
		case menuNext:
			nav.NextMonth()
			continue
		case menuQuit:
			return nil
		default:
			continue
		}
		if err != nil {
			return err
		}

		err = screen()
		nav.Back()
		if err != nil {
			if endOfInput(err) {
				return nil
			}
			_, _ = fmt.Fprintln(w, Error("error: "+err.Error()))
		}
	}
}

func endOfInput(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, huh.ErrUserAborted)
}

func showDashboard(cmd *cobra.Command, a *app, p period) error {
	data, err := loadDashboard(commandContext(cmd), a, p)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout())
	_, err = io.WriteString(cmd.OutOrStdout(), renderDashboard(data, map[int]bool{}, -1))
	return err
}

var addMenu = []string{
	entry.LabelWork,
	entry.LabelDrive,
	entry.LabelVacation,
	entry.LabelSick,
	backOption,
}

func shellAdd(cmd *cobra.Command, a *app, pk PromptKit, nowFn func() time.Time) error {
	choice, err := pk.Select("Entry type", addMenu)
	if err != nil {
		return err
	}
	if choice == len(addMenu)-1 {
		return nil
	}

	date, err := pk.PromptWithDefault("Date", schedule.FormatDay(nowFn()))
	if err != nil {
		return err
	}

	switch choice {
	case 0:
		pause, err := pk.PromptWithDefault("Pause (minutes)", "30")
		if err != nil {
			return err
		}
		project, err := pk.PromptWithDefault("Project", "")
		if err != nil {
			return err
		}
		return runAddWork(cmd, a, date, "", "", pause, "", project, pk, nowFn)
	case 1:
		project, err := pk.PromptWithDefault("Project", "")
		if err != nil {
			return err
		}
		return runAddDrive(cmd, a, date, "", "", project, pk, nowFn)
	case 2:
		return runAddAbsence(cmd, a, entry.TypeVacation, date, nowFn)
	default:
		return runAddAbsence(cmd, a, entry.TypeSick, date, nowFn)
	}
}

func shellReport(cmd *cobra.Command, a *app, p period, pk PromptKit, nowFn func() time.Time) error {
	month := strconv.Itoa(int(p.month))
	year := strconv.Itoa(p.year)
	if err := runReport(cmd, a, month, "", year, "", "", nowFn); err != nil {
		return err
	}

	choice, err := pk.Select("Report", []string{"Export PDF", backOption})
	if err != nil || choice != 0 {
		return err
	}
	output, err := pk.PromptWithDefault("Output file or directory", "")
	if err != nil {
		return err
	}
	return runReport(cmd, a, month, "", year, "pdf", output, nowFn)
}

func shellSettings(cmd *cobra.Command, a *app, pk PromptKit) error {
	keys := settings.Keys()
	options := append(append([]string{}, keys...), backOption)

	for {
		if err := runSettingsShow(cmd, a); err != nil {
			return err
		}
		choice, err := pk.Select("Change setting", options)
		if err != nil {
			return err
		}
		if choice == len(keys) {
			return nil
		}

		key := keys[choice]
		current, _ := a.settings.Get(key)
		value, err := pk.PromptWithDefault(key, current)
		if err != nil {
			return err
		}
		if err := runSettingsSet(cmd, a, key, value); err != nil {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), Error(err.Error()))
		}
	}
}
