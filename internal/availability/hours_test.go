package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

func TestResolveHours(t *testing.T) {
	tests := []struct {
		name   string
		record *domain.BusinessHours
		want   domain.OperatingHours
	}{
		{
			name:   "nil record",
			record: nil,
			want:   domain.OperatingHours{OpenHour: 3, CloseHour: 24, Source: domain.HoursSourceDefault},
		},
		{
			name:   "empty record",
			record: &domain.BusinessHours{BusinessID: "salon-1"},
			want:   domain.OperatingHours{OpenHour: 3, CloseHour: 24, Source: domain.HoursSourceDefault},
		},
		{
			name:   "both stored",
			record: &domain.BusinessHours{OpenTime: ptr.Ptr("9:00 AM"), CloseTime: ptr.Ptr("5:30 PM")},
			want:   domain.OperatingHours{OpenHour: 9, CloseHour: 17, CloseMinute: 30, Source: domain.HoursSourceStored},
		},
		{
			name:   "open only",
			record: &domain.BusinessHours{OpenTime: ptr.Ptr("10:00 AM")},
			want:   domain.OperatingHours{OpenHour: 10, CloseHour: 24, Source: domain.HoursSourcePartial},
		},
		{
			name:   "close only",
			record: &domain.BusinessHours{CloseTime: ptr.Ptr("8:00 PM")},
			want:   domain.OperatingHours{OpenHour: 3, CloseHour: 20, Source: domain.HoursSourcePartial},
		},
		{
			name:   "midnight and noon",
			record: &domain.BusinessHours{OpenTime: ptr.Ptr("12:00 AM"), CloseTime: ptr.Ptr("12:00 PM")},
			want:   domain.OperatingHours{OpenHour: 0, CloseHour: 12, Source: domain.HoursSourceStored},
		},
		{
			name:   "24-hour strings",
			record: &domain.BusinessHours{OpenTime: ptr.Ptr("07:00"), CloseTime: ptr.Ptr("21:00")},
			want:   domain.OperatingHours{OpenHour: 7, CloseHour: 21, Source: domain.HoursSourceStored},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveHours(tt.record)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveHours_Malformed(t *testing.T) {
	hours, err := ResolveHours(&domain.BusinessHours{OpenTime: ptr.Ptr("nine o'clock")})
	assert.ErrorIs(t, err, ErrMalformedHours)
	assert.Equal(t, domain.HoursSourceMalformed, hours.Source)

	_, err = ResolveHours(&domain.BusinessHours{OpenTime: ptr.Ptr("9:00 AM"), CloseTime: ptr.Ptr("17:00 PM")})
	assert.ErrorIs(t, err, ErrMalformedHours)
}
