package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "09:00 AM", FormatTime(at(2024, 1, 1, 9, 0)))
	assert.Equal(t, "12:00 AM", FormatTime(at(2024, 1, 1, 0, 0)))
	assert.Equal(t, "12:30 PM", FormatTime(at(2024, 1, 1, 12, 30)))
	assert.Equal(t, "04:00 PM", FormatTime(at(2024, 1, 1, 16, 0)))
}

func TestFormatTimeRange(t *testing.T) {
	assert.Equal(t, "04:00 PM - 05:00 PM", FormatTimeRange(at(2024, 1, 1, 16, 0)))
	assert.Equal(t, "11:00 AM - 12:00 PM", FormatTimeRange(at(2024, 1, 1, 11, 0)))
	assert.Equal(t, "11:00 PM - 12:00 AM", FormatTimeRange(at(2024, 1, 1, 23, 0)))
}
