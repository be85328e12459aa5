package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Flyrell/zeitkonto/internal/entry"
	"github.com/Flyrell/zeitkonto/internal/schedule"
	"github.com/Flyrell/zeitkonto/internal/timetrack"
)

// editValues holds the raw flag values of the edit command.
type editValues struct {
	date    string
	from    string
	to      string
	pause   string
	code    string
	project string
}

var editCmd = LeafCommand{
	Use:   "edit <id>",
	Short: "Edit an existing entry",
	Args:  cobra.ExactArgs(1),
	StrFlags: []StringFlag{
		dateOption,
		{Name: "from", Usage: "new start time"},
		{Name: "to", Usage: "new end time"},
		{Name: "pause", Usage: "new pause (e.g. 30, 45m)"},
		{Name: "code", Shorthand: "c", Usage: "new work code"},
		{Name: "project", Shorthand: "p", Usage: "new project or site"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}

		var v editValues
		v.date, _ = cmd.Flags().GetString("date")
		v.from, _ = cmd.Flags().GetString("from")
		v.to, _ = cmd.Flags().GetString("to")
		v.pause, _ = cmd.Flags().GetString("pause")
		v.code, _ = cmd.Flags().GetString("code")
		v.project, _ = cmd.Flags().GetString("project")

		changed := map[string]bool{}
		for _, name := range []string{"date", "from", "to", "pause", "code", "project"} {
			changed[name] = cmd.Flags().Changed(name)
		}

		return runEdit(cmd, a, args[0], v, changed, promptKitFor(cmd), time.Now)
	},
}.Build()

func runEdit(
	cmd *cobra.Command,
	a *app,
	id string,
	v editValues,
	changed map[string]bool,
	pk PromptKit,
	nowFn func() time.Time,
) error {
	if entry.IsDerivedID(id) {
		return fmt.Errorf("entry '%s': %w", id, entry.ErrDerivedRecord)
	}

	ctx := commandContext(cmd)
	all, err := a.store.All(ctx)
	if err != nil {
		return err
	}
	original, err := entry.Find(all, id)
	if err != nil {
		return err
	}

	anyChanged := false
	for _, c := range changed {
		anyChanged = anyChanged || c
	}
	if !anyChanged {
		v, changed, err = promptEdits(original, pk)
		if err != nil {
			return err
		}
	}

	updated, err := applyEdits(original, v, changed, nowFn())
	if err != nil {
		return err
	}

	if sameEntry(original, updated) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no changes")
		return nil
	}

	if err := a.store.Put(ctx, entry.Stored(updated)); err != nil {
		return err
	}
	a.log.Debug(ctx, "entry updated", "id", updated.ID)

	printEditDiff(cmd, original, updated)
	return nil
}

// applyEdits returns a copy of e with the changed fields replaced. Work
// entries are rebuilt through the constructor so the net duration and the
// travel-code pause rule are recomputed; absences take the target of their
// new date.
func applyEdits(e entry.TimeEntry, v editValues, changed map[string]bool, now time.Time) (entry.TimeEntry, error) {
	date, err := e.Day()
	if err != nil {
		return e, err
	}
	if changed["date"] {
		if date, err = schedule.ParseDateRelative(v.date, now); err != nil {
			return e, err
		}
	}
	project := e.Project
	if changed["project"] {
		project = v.project
	}

	if e.Type != entry.TypeWork {
		if changed["from"] || changed["to"] || changed["pause"] || changed["code"] {
			return e, fmt.Errorf("%s entries have no times or code, only --date and --project apply", kindLabel(e))
		}
		out := e
		out.Date = schedule.FormatDay(date)
		out.Project = project
		out.NetDuration = schedule.TargetMinutes(date)
		return out, nil
	}

	from, to := deref(e.Start), deref(e.End)
	if changed["from"] {
		from = v.from
	}
	if changed["to"] {
		to = v.to
	}

	pause := e.Pause
	if changed["pause"] {
		if pause, err = entry.ParsePause(v.pause); err != nil {
			return e, err
		}
	}

	code := 0
	if e.Code != nil {
		code = *e.Code
	}
	if changed["code"] {
		if code, err = strconv.Atoi(v.code); err != nil || !entry.KnownCode(code) {
			return e, fmt.Errorf("unknown work code %q", v.code)
		}
	}

	out, err := entry.NewWork(date, from, to, pause, code, project)
	if err != nil {
		return e, err
	}
	out.ID = e.ID
	if e.Code == nil && !changed["code"] {
		out.Code = nil
	}
	return out, nil
}

// promptEdits asks for every editable field with the current value as the
// default and marks the fields the user changed.
func promptEdits(e entry.TimeEntry, pk PromptKit) (editValues, map[string]bool, error) {
	v := editValues{
		date:    e.Date,
		from:    deref(e.Start),
		to:      deref(e.End),
		pause:   strconv.Itoa(e.Pause),
		project: e.Project,
	}
	if e.Code != nil {
		v.code = strconv.Itoa(*e.Code)
	}

	fields := []struct {
		name   string
		prompt string
		value  *string
	}{
		{"date", "Date", &v.date},
		{"from", "From", &v.from},
		{"to", "To", &v.to},
		{"pause", "Pause (minutes)", &v.pause},
		{"code", "Work code", &v.code},
		{"project", "Project", &v.project},
	}
	if e.Type != entry.TypeWork {
		fields = []struct {
			name   string
			prompt string
			value  *string
		}{fields[0], fields[5]}
	}

	changed := map[string]bool{}
	for _, f := range fields {
		answer, err := pk.PromptWithDefault(f.prompt, *f.value)
		if err != nil {
			return v, nil, err
		}
		if answer != *f.value {
			*f.value = answer
			changed[f.name] = true
		}
	}
	return v, changed, nil
}

func sameEntry(a, b entry.TimeEntry) bool {
	return a.Date == b.Date &&
		deref(a.Start) == deref(b.Start) &&
		deref(a.End) == deref(b.End) &&
		a.Pause == b.Pause &&
		a.Project == b.Project &&
		codeValue(a) == codeValue(b) &&
		a.NetDuration == b.NetDuration
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func codeValue(e entry.TimeEntry) string {
	if e.Code == nil {
		return ""
	}
	return strconv.Itoa(*e.Code)
}

func printEditDiff(cmd *cobra.Command, before, after entry.TimeEntry) {
	w := cmd.OutOrStdout()

	diff := func(label, from, to string) {
		if from == to {
			return
		}
		if from == "" {
			from = "(none)"
		}
		if to == "" {
			to = "(none)"
		}
		_, _ = fmt.Fprintf(w, "  %-8s %s → %s\n", label+":", Silent(from), Primary(to))
	}

	diff("date", before.Date, after.Date)
	diff("time", timeLabel(before), timeLabel(after))
	diff("pause", strconv.Itoa(before.Pause), strconv.Itoa(after.Pause))
	diff("code", entry.CodeOf(before), entry.CodeOf(after))
	diff("project", before.Project, after.Project)
	diff("net",
		schedule.FormatDuration(timetrack.Minutes(before)),
		schedule.FormatDuration(timetrack.Minutes(after)))

	_, _ = fmt.Fprintf(w, "updated entry %s\n", Silent(after.ID.Short()))
}
