package entry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWork(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		pause int
		code  int
		want  int
	}{
		{"epiphany shift", "06:00", "16:30", 30, 11, 600},
		{"short morning", "07:00", "11:30", 0, 70, 270},
		{"pause longer than span clamps", "07:00", "07:20", 30, 11, 0},
		{"paid travel ignores pause", "05:00", "06:30", 30, CodePaidTravel, 90},
		{"lenient clock forms", "6.00", "2pm", 30, 11, 450},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewWork(day(2025, 1, 6), tt.start, tt.end, tt.pause, tt.code, "Projekt")
			require.NoError(t, err)
			assert.Equal(t, TypeWork, e.Type)
			assert.Equal(t, "2025-01-06", e.Date)
			assert.Equal(t, tt.want, e.NetDuration)
			assert.GreaterOrEqual(t, e.NetDuration, 0)
			assert.Equal(t, tt.want, NetDurationOf(e))
			require.NotNil(t, e.Code)
			assert.Equal(t, tt.code, *e.Code)
			assert.NotEmpty(t, e.ID)
		})
	}
}

func TestNewWorkRejectsEndNotAfterStart(t *testing.T) {
	for _, span := range [][2]string{{"10:00", "10:00"}, {"16:00", "08:00"}} {
		t.Run(span[0]+"-"+span[1], func(t *testing.T) {
			e, err := NewWork(day(2025, 1, 6), span[0], span[1], 0, 11, "")
			assert.ErrorIs(t, err, ErrEndNotAfterStart)
			assert.Equal(t, TimeEntry{}, e)
		})
	}
}

func TestNewWorkRejectsBadInput(t *testing.T) {
	_, err := NewWork(day(2025, 1, 6), "nope", "10:00", 0, 11, "")
	assert.Error(t, err)

	_, err = NewWork(day(2025, 1, 6), "08:00", "10:00", -1, 11, "")
	assert.ErrorIs(t, err, ErrNegativePause)
}

func TestNewDrive(t *testing.T) {
	e, err := NewDrive(day(2025, 1, 7), "05:15", "06:45", "Linz")
	require.NoError(t, err)
	assert.Equal(t, TypeWork, e.Type)
	assert.True(t, e.HasCode(CodeUnpaidTravel))
	assert.Equal(t, 0, e.Pause)
	assert.Equal(t, 90, e.NetDuration)

	_, err = NewDrive(day(2025, 1, 7), "06:45", "05:15", "")
	assert.ErrorIs(t, err, ErrEndNotAfterStart)
}

func TestNewAbsence(t *testing.T) {
	tests := []struct {
		typ   Type
		date  string
		label string
		want  int
	}{
		{TypeVacation, "2025-01-07", "Urlaub", 510},
		{TypeVacation, "2025-01-10", "Urlaub", 270},
		{TypeSick, "2025-01-11", "Krank", 0},
		{TypeSick, "2025-01-09", "Krank", 510},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ)+" "+tt.date, func(t *testing.T) {
			d, err := time.Parse("2006-01-02", tt.date)
			require.NoError(t, err)

			e, err := NewAbsence(tt.typ, d)
			require.NoError(t, err)
			assert.Equal(t, tt.typ, e.Type)
			assert.Equal(t, tt.label, e.Project)
			assert.Equal(t, tt.want, e.NetDuration)
			assert.Nil(t, e.Start)
			assert.Nil(t, e.End)
			assert.Nil(t, e.Code)
		})
	}

	_, err := NewAbsence(TypeWork, day(2025, 1, 7))
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestNewHolidayIsDeterministic(t *testing.T) {
	a := NewHoliday(day(2025, 1, 6), "Heilige Drei Könige")
	b := NewHoliday(day(2025, 1, 6), "Heilige Drei Könige")
	assert.Equal(t, a, b)
	assert.Equal(t, ID("auto-holiday-2025-01-06"), a.ID)
	assert.Equal(t, TypePublicHoliday, a.Type)
	assert.Equal(t, 510, a.NetDuration)

	assert.Equal(t, LabelHoliday, NewHoliday(day(2025, 1, 6), "").Project)
}

func TestNetDurationOfMissingFields(t *testing.T) {
	start := "08:00"
	assert.Equal(t, 0, NetDurationOf(TimeEntry{Type: TypeWork}))
	assert.Equal(t, 0, NetDurationOf(TimeEntry{Type: TypeWork, Start: &start}))

	bad := "xx"
	assert.Equal(t, 0, NetDurationOf(TimeEntry{Type: TypeWork, Start: &start, End: &bad}))
	assert.Equal(t, 510, NetDurationOf(TimeEntry{Type: TypeVacation, NetDuration: 510}))
	assert.Equal(t, 0, NetDurationOf(TimeEntry{Type: TypeSick, NetDuration: -3}))
}

func TestValidate(t *testing.T) {
	e, err := NewWork(day(2025, 1, 6), "06:00", "16:30", 30, 11, "")
	require.NoError(t, err)
	assert.NoError(t, Validate(e))

	bad := e
	bad.ID = ""
	assert.Error(t, Validate(bad))

	bad = e
	bad.Type = "drive"
	assert.ErrorIs(t, Validate(bad), ErrInvalidType)

	bad = e
	bad.Date = "06.01.2025"
	assert.Error(t, Validate(bad))

	bad = e
	bad.NetDuration = -1
	assert.Error(t, Validate(bad))
}

func TestCodes(t *testing.T) {
	all := Codes()
	require.Len(t, all, 27)
	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, 190, all[len(all)-1].ID)

	assert.Equal(t, "19 - Fahrzeit", CodeLabel(CodeUnpaidTravel))
	assert.Equal(t, "19 - An/Abreise", CodeLabel(CodePaidTravel))
	assert.Equal(t, "70 - Büro", CodeLabel(CodeOffice))
	assert.Equal(t, "99", CodeLabel(99))
	assert.True(t, KnownCode(25))
	assert.False(t, KnownCode(26))

	assert.Equal(t, "", CodeOf(TimeEntry{}))
}
