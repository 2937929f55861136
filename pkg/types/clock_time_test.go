package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		in         string
		wantHour   int
		wantMinute int
	}{
		{"9:00 AM", 9, 0},
		{"9:30 am", 9, 30},
		{"12:00 AM", 0, 0},
		{"12:15 AM", 0, 15},
		{"12:00 PM", 12, 0},
		{"5:00 PM", 17, 0},
		{"11:59 pm", 23, 59},
		{"  10:45   PM ", 22, 45},
		{"21:00", 21, 0},
		{"00:30", 0, 30},
		{"24:00", 24, 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClockTime(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHour, got.Hour())
			assert.Equal(t, tt.wantMinute, got.Minute())
		})
	}
}

func TestParseClockTime_Invalid(t *testing.T) {
	for _, in := range []string{
		"",
		"9",
		"9 AM",
		"13:00 PM",
		"0:00 AM",
		"9:0 AM",
		"9:60 AM",
		"25:00",
		"24:30",
		"9:00 XM",
		"9:00 AM extra",
		"ab:cd",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseClockTime(in)
			assert.ErrorIs(t, err, ErrInvalidClockTime)
		})
	}
}

func TestClockTime_String(t *testing.T) {
	tests := map[string]string{
		"9:00 AM":  "9:00 AM",
		"12:00 AM": "12:00 AM",
		"12:30 PM": "12:30 PM",
		"17:05":    "5:05 PM",
		"24:00":    "12:00 AM",
	}

	for in, want := range tests {
		got, err := ParseClockTime(in)
		require.NoError(t, err)
		assert.Equal(t, want, got.String(), in)
	}
}

func TestClockTime_Compare(t *testing.T) {
	open, err := ParseClockTime("9:00 AM")
	require.NoError(t, err)
	closing, err := ParseClockTime("5:00 PM")
	require.NoError(t, err)

	assert.Less(t, open.Minutes(), closing.Minutes())
	assert.Equal(t, 17*60, closing.Minutes())
	assert.Equal(t, "17:00", closing.Clock24())
}

func TestClockTime_Label(t *testing.T) {
	tests := map[string]string{
		"9:00 AM":  "9:00 AM",
		"12:00 AM": "12:00 AM",
		"21:30":    "9:30 PM",
		"24:00":    "24:00",
	}

	for in, want := range tests {
		got, err := ParseClockTime(in)
		require.NoError(t, err)
		assert.Equal(t, want, got.Label(), in)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "3:00 AM", FormatClock(3, 0))
	assert.Equal(t, "8:30 PM", FormatClock(20, 30))
	assert.Equal(t, "24:00", FormatClock(24, 0))
	assert.Equal(t, "", FormatClock(24, 30))
	assert.Equal(t, "", FormatClock(-1, 0))
}
