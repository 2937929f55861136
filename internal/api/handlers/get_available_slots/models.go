package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date       string          `json:"date"`
	BusinessID string          `json:"businessId"`
	Hours      HoursInfo       `json:"hours"`
	Slots      []AvailableSlot `json:"slots"`
}

// HoursInfo часы, по которым построены слоты
type HoursInfo struct {
	Opening string `json:"opening"`
	Closing string `json:"closing"`
	Source  string `json:"source"`
}

// AvailableSlot модель часового слота
type AvailableSlot struct {
	StartTime string    `json:"startTime"` // "09:00 AM"
	EndTime   string    `json:"endTime"`   // "10:00 AM"
	Label     string    `json:"label"`     // "09:00 AM - 10:00 AM"
	StartsAt  time.Time `json:"startsAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime: availability.FormatTime(slot.Start),
			EndTime:   availability.FormatTime(slot.End()),
			Label:     slot.Label,
			StartsAt:  slot.Start,
		}
	}

	return &AvailableSlotsResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		BusinessID: resp.BusinessID,
		Hours: HoursInfo{
			Opening: types.FormatClock(resp.Hours.OpenHour, resp.Hours.OpenMinute),
			Closing: types.FormatClock(resp.Hours.CloseHour, resp.Hours.CloseMinute),
			Source:  string(resp.Hours.Source),
		},
		Slots: slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(businessID, dateStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		BusinessID: businessID,
		Date:       date,
	}, nil
}
