package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Flyrell/zeitkonto/internal/timetrack"
)

func TestNavigatorTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    view
		to      view
		wantErr bool
	}{
		{"dashboard to add", viewDashboard, viewAdd, false},
		{"dashboard to report", viewDashboard, viewReport, false},
		{"dashboard to settings", viewDashboard, viewSettings, false},
		{"add to dashboard", viewAdd, viewDashboard, false},
		{"report to dashboard", viewReport, viewDashboard, false},
		{"settings to dashboard", viewSettings, viewDashboard, false},
		{"same view", viewReport, viewReport, false},
		{"add to report", viewAdd, viewReport, true},
		{"settings to add", viewSettings, viewAdd, true},
		{"report to settings", viewReport, viewSettings, true},
		{"unknown view", viewDashboard, view(9), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &navigator{current: tt.from}
			err := n.Go(tt.to)
			if tt.wantErr {
				assert.ErrorIs(t, err, errInvalidTransition)
				assert.Equal(t, tt.from, n.current)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, n.current)
		})
	}
}

func TestNavigatorBack(t *testing.T) {
	for _, v := range []view{viewDashboard, viewAdd, viewReport, viewSettings} {
		n := &navigator{current: v}
		n.Back()
		assert.Equal(t, viewDashboard, n.current)
	}
}

func TestNavigatorMonths(t *testing.T) {
	n := newNavigator(period{year: 2025, month: time.January, filter: timetrack.Month()})

	n.PrevMonth()
	assert.Equal(t, 2024, n.period.year)
	assert.Equal(t, time.December, n.period.month)

	n.NextMonth()
	n.NextMonth()
	assert.Equal(t, 2025, n.period.year)
	assert.Equal(t, time.February, n.period.month)
}

func TestViewString(t *testing.T) {
	assert.Equal(t, "dashboard", viewDashboard.String())
	assert.Equal(t, "settings", viewSettings.String())
	assert.Equal(t, "view(7)", view(7).String())
}
