package get_open_status

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

var pkt = time.FixedZone("PKT", 5*60*60)

type MockHoursResolver struct {
	mock.Mock
}

func (m *MockHoursResolver) Resolve(ctx context.Context, businessID string) (domain.OperatingHours, error) {
	args := m.Called(ctx, businessID)
	return args.Get(0).(domain.OperatingHours), args.Error(1)
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

func TestExecute(t *testing.T) {
	nineToFive := domain.OperatingHours{OpenHour: 9, CloseHour: 17, Source: domain.HoursSourceStored}
	overnight := domain.OperatingHours{OpenHour: 22, CloseHour: 2, Source: domain.HoursSourceStored}

	tests := []struct {
		name  string
		now   time.Time
		hours domain.OperatingHours
		want  bool
	}{
		{"inside", time.Date(2024, 1, 1, 12, 0, 0, 0, pkt), nineToFive, true},
		{"at opening", time.Date(2024, 1, 1, 9, 0, 0, 0, pkt), nineToFive, true},
		{"before opening", time.Date(2024, 1, 1, 8, 59, 0, 0, pkt), nineToFive, false},
		{"after closing", time.Date(2024, 1, 1, 17, 1, 0, 0, pkt), nineToFive, false},
		{"overnight after midnight", time.Date(2024, 1, 1, 1, 0, 0, 0, pkt), overnight, true},
		{"overnight midday", time.Date(2024, 1, 1, 12, 0, 0, 0, pkt), overnight, false},
		{"utc instant", time.Date(2024, 1, 1, 7, 0, 0, 0, time.UTC), nineToFive, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &MockHoursResolver{}
			resolver.On("Resolve", mock.Anything, "salon-1").Return(tt.hours, nil)
			uc := NewUseCase(resolver, pkt, logger.NewNop())
			uc.timeProvider = &fixedTime{now: tt.now}

			resp, err := uc.Execute(context.Background(), &Request{BusinessID: "salon-1"})

			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.IsOpen)
			assert.Equal(t, tt.hours, resp.Hours)
			assert.Equal(t, pkt, resp.CheckedAt.Location())
		})
	}
}

func TestExecute_UnusableHoursReportClosed(t *testing.T) {
	resolver := &MockHoursResolver{}
	resolver.On("Resolve", mock.Anything, "salon-1").
		Return(domain.DefaultOperatingHours(domain.HoursSourceDefault), fmt.Errorf("%w: close time", availability.ErrMalformedHours))
	uc := NewUseCase(resolver, pkt, logger.NewNop())
	uc.timeProvider = &fixedTime{now: time.Date(2024, 1, 1, 12, 0, 0, 0, pkt)}

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: "salon-1"})

	require.NoError(t, err)
	assert.False(t, resp.IsOpen)
}

func TestExecute_HoursNotConfiguredReportClosed(t *testing.T) {
	for _, source := range []domain.HoursSource{domain.HoursSourceDefault, domain.HoursSourcePartial, domain.HoursSourceFallback} {
		t.Run(string(source), func(t *testing.T) {
			hours := domain.DefaultOperatingHours(source)
			resolver := &MockHoursResolver{}
			resolver.On("Resolve", mock.Anything, "salon-1").Return(hours, nil)
			uc := NewUseCase(resolver, pkt, logger.NewNop())
			// 04:00 внутри окна слотов по умолчанию 03:00-24:00
			uc.timeProvider = &fixedTime{now: time.Date(2024, 1, 1, 4, 0, 0, 0, pkt)}

			resp, err := uc.Execute(context.Background(), &Request{BusinessID: "salon-1"})

			require.NoError(t, err)
			assert.False(t, resp.IsOpen)
			assert.Equal(t, source, resp.Hours.Source)
		})
	}
}
