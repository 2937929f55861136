package get_available_slots

import (
	"context"
	"errors"
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

type slotsRecorder struct {
	today []bool
	count []int
}

func (r *slotsRecorder) ObserveSlotsReturned(today bool, count int) {
	r.today = append(r.today, today)
	r.count = append(r.count, count)
}

func nineToFive() domain.OperatingHours {
	return domain.OperatingHours{OpenHour: 9, CloseHour: 17, Source: domain.HoursSourceStored}
}

func newTestUseCase(resolver HoursResolver, now time.Time, recorder MetricsRecorder) *UseCase {
	uc := NewUseCase(resolver, pkt, domain.MaxHorizonDays, recorder, logger.NewNop())
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func labels(slots []Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Label
	}
	return out
}

func TestExecute_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		date      time.Time
		hours     domain.OperatingHours
		wantFirst string
		wantLast  string
		wantCount int
		wantToday bool
	}{
		{
			name:      "today before opening",
			now:       time.Date(2024, 1, 1, 8, 30, 0, 0, pkt),
			date:      date(2024, 1, 1),
			hours:     nineToFive(),
			wantFirst: "09:00 AM - 10:00 AM",
			wantLast:  "04:00 PM - 05:00 PM",
			wantCount: 8,
			wantToday: true,
		},
		{
			name:      "today after last start",
			now:       time.Date(2024, 1, 1, 16, 30, 0, 0, pkt),
			date:      date(2024, 1, 1),
			hours:     nineToFive(),
			wantCount: 0,
			wantToday: true,
		},
		{
			name:      "future date ignores current time",
			now:       time.Date(2024, 1, 1, 16, 30, 0, 0, pkt),
			date:      date(2024, 1, 2),
			hours:     nineToFive(),
			wantFirst: "09:00 AM - 10:00 AM",
			wantLast:  "04:00 PM - 05:00 PM",
			wantCount: 8,
		},
		{
			name:      "rounds up to next hour",
			now:       time.Date(2024, 1, 1, 10, 15, 0, 0, pkt),
			date:      date(2024, 1, 1),
			hours:     nineToFive(),
			wantFirst: "11:00 AM - 12:00 PM",
			wantLast:  "04:00 PM - 05:00 PM",
			wantCount: 6,
			wantToday: true,
		},
		{
			name:      "defaults",
			now:       time.Date(2024, 1, 1, 12, 0, 0, 0, pkt),
			date:      date(2024, 1, 2),
			hours:     domain.DefaultOperatingHours(domain.HoursSourceDefault),
			wantFirst: "03:00 AM - 04:00 AM",
			wantLast:  "11:00 PM - 12:00 AM",
			wantCount: 21,
		},
		{
			name:      "past date",
			now:       time.Date(2024, 1, 2, 8, 0, 0, 0, pkt),
			date:      date(2024, 1, 1),
			hours:     nineToFive(),
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &MockHoursResolver{}
			resolver.On("Resolve", mock.Anything, "salon-1").Return(tt.hours, nil)
			rec := &slotsRecorder{}
			uc := newTestUseCase(resolver, tt.now, rec)

			resp, err := uc.Execute(context.Background(), &Request{BusinessID: "salon-1", Date: tt.date})

			require.NoError(t, err)
			require.NotNil(t, resp.Slots)
			require.Len(t, resp.Slots, tt.wantCount)
			assert.Equal(t, tt.hours, resp.Hours)
			assert.Equal(t, "salon-1", resp.BusinessID)
			assert.Equal(t, []bool{tt.wantToday}, rec.today)
			assert.Equal(t, []int{tt.wantCount}, rec.count)

			if tt.wantCount > 0 {
				assert.Equal(t, tt.wantFirst, resp.Slots[0].Label)
				assert.Equal(t, tt.wantLast, resp.Slots[len(resp.Slots)-1].Label)
			}
			for _, s := range resp.Slots {
				assert.Equal(t, time.Hour, s.End().Sub(s.Start))
				assert.Equal(t, pkt, s.Start.Location())
			}
		})
	}
}

func TestExecute_DateIsTakenAsCivilDate(t *testing.T) {
	// 2024-01-02 в UTC-10 это уже 3 января по UTC, но выбрана все равно 2-я дата
	resolver := &MockHoursResolver{}
	resolver.On("Resolve", mock.Anything, "salon-1").Return(nineToFive(), nil)
	uc := newTestUseCase(resolver, time.Date(2024, 1, 1, 12, 0, 0, 0, pkt), nil)

	selected := time.Date(2024, 1, 2, 20, 0, 0, 0, time.FixedZone("HST", -10*60*60))
	resp, err := uc.Execute(context.Background(), &Request{BusinessID: "salon-1", Date: selected})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, pkt), resp.Date)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, time.Date(2024, 1, 2, 9, 0, 0, 0, pkt), resp.Slots[0].Start)
}

func TestExecute_UnusableHoursGiveEmptySlots(t *testing.T) {
	resolver := &MockHoursResolver{}
	resolver.On("Resolve", mock.Anything, "salon-1").
		Return(domain.DefaultOperatingHours(domain.HoursSourceDefault), fmt.Errorf("%w: open time", availability.ErrMalformedHours))
	rec := &slotsRecorder{}
	uc := newTestUseCase(resolver, time.Date(2024, 1, 1, 8, 0, 0, 0, pkt), rec)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: "salon-1", Date: date(2024, 1, 2)})

	require.NoError(t, err)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
	assert.Empty(t, rec.count)
}

func TestExecute_Validation(t *testing.T) {
	resolver := &MockHoursResolver{}
	uc := newTestUseCase(resolver, time.Date(2024, 1, 1, 8, 0, 0, 0, pkt), nil)

	_, err := uc.Execute(context.Background(), &Request{BusinessID: "salon-1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BusinessID: "salon-1", Date: date(2024, 3, 1)})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.True(t, errors.Is(err, ErrDateTooFarInFuture))

	resolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}

func TestExecute_LastDayOfHorizonIsAllowed(t *testing.T) {
	resolver := &MockHoursResolver{}
	resolver.On("Resolve", mock.Anything, "").Return(domain.DefaultOperatingHours(domain.HoursSourceDefault), nil)
	uc := newTestUseCase(resolver, time.Date(2024, 1, 1, 8, 0, 0, 0, pkt), nil)

	last := date(2024, 1, 1).AddDate(0, 0, domain.MaxHorizonDays-1)
	resp, err := uc.Execute(context.Background(), &Request{Date: last})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 21)
}

func TestExecute_IsIdempotent(t *testing.T) {
	resolver := &MockHoursResolver{}
	resolver.On("Resolve", mock.Anything, "salon-1").Return(nineToFive(), nil)
	uc := newTestUseCase(resolver, time.Date(2024, 1, 1, 10, 15, 0, 0, pkt), nil)
	req := &Request{BusinessID: "salon-1", Date: date(2024, 1, 1)}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, labels(first.Slots), labels(second.Slots))
}
