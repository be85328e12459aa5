package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		// 24-hour
		{name: "06:00", input: "06:00", want: TimeOfDay{Hour: 6, Minute: 0}},
		{name: "16:30", input: "16:30", want: TimeOfDay{Hour: 16, Minute: 30}},
		{name: "6:15", input: "6:15", want: TimeOfDay{Hour: 6, Minute: 15}},
		{name: "00:00", input: "00:00", want: TimeOfDay{Hour: 0, Minute: 0}},
		{name: "23:59", input: "23:59", want: TimeOfDay{Hour: 23, Minute: 59}},

		// Dot and compact separators
		{name: "16.30", input: "16.30", want: TimeOfDay{Hour: 16, Minute: 30}},
		{name: "0645", input: "0645", want: TimeOfDay{Hour: 6, Minute: 45}},

		// 12-hour
		{name: "6:30am", input: "6:30am", want: TimeOfDay{Hour: 6, Minute: 30}},
		{name: "4:30 pm", input: "4:30 pm", want: TimeOfDay{Hour: 16, Minute: 30}},
		{name: "12am", input: "12am", want: TimeOfDay{Hour: 0, Minute: 0}},
		{name: "12pm", input: "12pm", want: TimeOfDay{Hour: 12, Minute: 0}},

		// Errors
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "half past six", wantErr: true},
		{name: "hour 24", input: "24:00", wantErr: true},
		{name: "minute 60", input: "06:60", wantErr: true},
		{name: "13pm", input: "13pm", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClockMinutes(t *testing.T) {
	m, err := ClockMinutes("16:30")
	require.NoError(t, err)
	assert.Equal(t, 990, m)

	_, err = ClockMinutes("nope")
	assert.Error(t, err)
}

func TestTimeOfDay(t *testing.T) {
	start := TimeOfDay{Hour: 6, Minute: 0}
	end := TimeOfDay{Hour: 16, Minute: 30}

	assert.Equal(t, "06:00", start.String())
	assert.Equal(t, 360, start.Minutes())
	assert.True(t, start.Before(end))
	assert.False(t, end.Before(start))
	assert.False(t, start.Before(start))
	assert.Equal(t, 630, SpanMinutes(start, end))
	assert.Equal(t, -630, SpanMinutes(end, start))
}

func TestFromMinutes(t *testing.T) {
	assert.Equal(t, TimeOfDay{Hour: 16, Minute: 30}, FromMinutes(990))
	assert.Equal(t, TimeOfDay{Hour: 0, Minute: 0}, FromMinutes(24*60))
	assert.Equal(t, TimeOfDay{Hour: 23, Minute: 30}, FromMinutes(-30))
}
