package get_available_dates

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableDates "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_dates"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	BusinessID string          `json:"businessId"`
	Dates      []AvailableDate `json:"dates"`
}

// AvailableDate дата для выбора в календаре
type AvailableDate struct {
	Date    string `json:"date"`    // "2024-01-01"
	Weekday string `json:"weekday"` // "Mon"
	Day     int    `json:"day"`
	Today   bool   `json:"today"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(businessID string, resp *getAvailableDates.Response) *AvailableDatesResponse {
	dates := make([]AvailableDate, len(resp.Dates))
	for i, d := range resp.Dates {
		dates[i] = AvailableDate{
			Date:    d.Format(domain.DateFormat),
			Weekday: d.Format("Mon"),
			Day:     d.Day(),
			Today:   i == 0,
		}
	}
	return &AvailableDatesResponse{
		BusinessID: businessID,
		Dates:      dates,
	}
}
