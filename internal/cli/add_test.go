package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Flyrell/zeitkonto/internal/entry"
)

func TestAddWorkWithFlags(t *testing.T) {
	a := newTestApp(t)
	cmd, stdout := newTestCmd()
	sk := &scriptedKit{t: t}

	err := runAddWork(cmd, a, "2025-01-07", "06:00", "16:30", "30m", "11", "Baustelle Linz", sk.kit(), fixedNow)
	require.NoError(t, err)

	entries := allEntries(t, a)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, entry.TypeWork, e.Type)
	assert.Equal(t, "2025-01-07", e.Date)
	assert.Equal(t, 30, e.Pause)
	assert.Equal(t, 600, e.NetDuration)
	assert.True(t, e.HasCode(11))
	assert.Equal(t, "Baustelle Linz", e.Project)

	assert.Contains(t, stdout.String(), "added arbeit entry")
	assert.Contains(t, stdout.String(), "Di 07.01.")
	assert.Contains(t, stdout.String(), "10h 00m")
	assert.Empty(t, sk.asked)
}

func TestAddWorkPromptsForMissingValues(t *testing.T) {
	a := newTestApp(t)
	cmd, _ := newTestCmd()
	codes := entry.Codes()
	officeIdx := -1
	for i, c := range codes {
		if c.ID == entry.CodeOffice {
			officeIdx = i
		}
	}
	require.NotEqual(t, -1, officeIdx)

	sk := &scriptedKit{t: t, answers: []string{"7:00", "15:30"}, choices: []int{officeIdx}}

	err := runAddWork(cmd, a, "", "", "", "", "", "", sk.kit(), fixedNow)
	require.NoError(t, err)

	entries := allEntries(t, a)
	require.Len(t, entries, 1)
	assert.Equal(t, "2025-01-08", entries[0].Date)
	assert.Equal(t, "07:00", *entries[0].Start)
	assert.Equal(t, "15:30", *entries[0].End)
	assert.True(t, entries[0].HasCode(entry.CodeOffice))
	assert.Equal(t, []string{"From (e.g. 06:00)", "To (e.g. 16:30)", "Work code"}, sk.asked)
}

func TestAddWorkPaidTravelDropsPause(t *testing.T) {
	a := newTestApp(t)
	cmd, _ := newTestCmd()

	err := runAddWork(cmd, a, "2025-01-07", "05:00", "07:00", "30", "190", "", (&scriptedKit{t: t}).kit(), fixedNow)
	require.NoError(t, err)

	entries := allEntries(t, a)
	require.Len(t, entries, 1)
	assert.Equal(t, 0, entries[0].Pause)
	assert.Equal(t, 120, entries[0].NetDuration)
}

func TestAddWorkErrors(t *testing.T) {
	tests := []struct {
		name                      string
		date, from, to, pause, cd string
		wantIs                    error
	}{
		{name: "end before start", date: "today", from: "16:00", to: "08:00", cd: "11", wantIs: entry.ErrEndNotAfterStart},
		{name: "end equals start", date: "today", from: "08:00", to: "08:00", cd: "11", wantIs: entry.ErrEndNotAfterStart},
		{name: "negative pause", date: "today", from: "08:00", to: "09:00", pause: "-5", cd: "11", wantIs: entry.ErrNegativePause},
		{name: "unknown code", date: "today", from: "08:00", to: "09:00", cd: "99"},
		{name: "bad date", date: "someday", from: "08:00", to: "09:00", cd: "11"},
		{name: "bad clock", date: "today", from: "late", to: "09:00", cd: "11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t)
			cmd, _ := newTestCmd()

			err := runAddWork(cmd, a, tt.date, tt.from, tt.to, tt.pause, tt.cd, "", (&scriptedKit{t: t}).kit(), fixedNow)

			require.Error(t, err)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			assert.Empty(t, allEntries(t, a))
		})
	}
}

func TestAddWorkOnHolidayIsNoted(t *testing.T) {
	a := newTestApp(t)
	cmd, stdout := newTestCmd()

	err := runAddWork(cmd, a, "2025-01-06", "08:00", "12:00", "", "11", "", (&scriptedKit{t: t}).kit(), fixedNow)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "public holiday (Heilige Drei Könige)")
	assert.Len(t, allEntries(t, a), 1)
}

func TestAddDrive(t *testing.T) {
	a := newTestApp(t)
	cmd, stdout := newTestCmd()

	err := runAddDrive(cmd, a, "yesterday", "05:30", "07:00", "Wien - Linz", (&scriptedKit{t: t}).kit(), fixedNow)
	require.NoError(t, err)

	entries := allEntries(t, a)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, entry.TypeWork, e.Type)
	assert.True(t, e.IsDrive())
	assert.Equal(t, "2025-01-07", e.Date)
	assert.Equal(t, 0, e.Pause)
	assert.Equal(t, 90, e.NetDuration)
	assert.Contains(t, stdout.String(), "added fahrzeit entry")
}

func TestAddAbsence(t *testing.T) {
	a := newTestApp(t)
	cmd, stdout := newTestCmd()

	require.NoError(t, runAddAbsence(cmd, a, entry.TypeVacation, "2025-01-09", fixedNow))
	require.NoError(t, runAddAbsence(cmd, a, entry.TypeSick, "2025-01-10", fixedNow))

	entries := allEntries(t, a)
	require.Len(t, entries, 2)
	entry.Sort(entries)
	assert.Equal(t, entry.TypeVacation, entries[0].Type)
	assert.Equal(t, 510, entries[0].NetDuration)
	assert.Equal(t, "Urlaub", entries[0].Project)
	assert.Equal(t, entry.TypeSick, entries[1].Type)
	assert.Equal(t, 270, entries[1].NetDuration)
	assert.Contains(t, stdout.String(), "added urlaub entry")
	assert.Contains(t, stdout.String(), "ganztägig")
}

func TestAddAbsenceOnWeekendWarns(t *testing.T) {
	a := newTestApp(t)
	cmd, stdout := newTestCmd()

	require.NoError(t, runAddAbsence(cmd, a, entry.TypeVacation, "2025-01-11", fixedNow))

	assert.Contains(t, stdout.String(), "Sa 11.01. is not a workday")
	entries := allEntries(t, a)
	require.Len(t, entries, 1)
	assert.Equal(t, 0, entries[0].NetDuration)
}

func TestAddCommandTree(t *testing.T) {
	names := make([]string, 0)
	for _, c := range addCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"work", "drive", "vacation", "sick"}, names)

	f := addWorkCmd.Flags().Lookup("date")
	require.NotNil(t, f)
	assert.Equal(t, "d", f.Shorthand)
}
