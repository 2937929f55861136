package models

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модели

// SetHoursRequest запрос на изменение рабочих часов.
// Передаются только изменяемые значения, остальные остаются как сохранены
type SetHoursRequest struct {
	UserID     string  `json:"userId"`
	BusinessID string  `json:"businessId"`
	OpenTime   *string `json:"openTime,omitempty"`  // "9:00 AM" или "09:00"
	CloseTime  *string `json:"closeTime,omitempty"` // "5:00 PM" или "17:00"
}

// Response модели

// HoursResponse рабочие часы бизнеса.
// OpenTime/CloseTime: то, что сохранено (nil = не задано). Opening/Closing: действующие значения с учетом умолчаний
type HoursResponse struct {
	BusinessID string     `json:"businessId"`
	OpenTime   *string    `json:"openTime"`
	CloseTime  *string    `json:"closeTime"`
	Opening    string     `json:"opening"`
	Closing    string     `json:"closing"`
	Source     string     `json:"source"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

// FromDomain собирает ответ из сохраненной записи (может быть nil) и рассчитанных часов
func FromDomain(businessID string, record *domain.BusinessHours, hours domain.OperatingHours) *HoursResponse {
	resp := &HoursResponse{
		BusinessID: businessID,
		Opening:    types.FormatClock(hours.OpenHour, hours.OpenMinute),
		Closing:    types.FormatClock(hours.CloseHour, hours.CloseMinute),
		Source:     string(hours.Source),
	}
	if record != nil {
		resp.OpenTime = record.OpenTime
		resp.CloseTime = record.CloseTime
		if !record.UpdatedAt.IsZero() {
			updatedAt := record.UpdatedAt
			resp.UpdatedAt = &updatedAt
		}
	}
	return resp
}

// FromRecord ответ для записи, которую не удалось разобрать: только сохраненные значения, без Source
func FromRecord(record *domain.BusinessHours) *HoursResponse {
	resp := &HoursResponse{
		BusinessID: record.BusinessID,
		OpenTime:   record.OpenTime,
		CloseTime:  record.CloseTime,
	}
	if !record.UpdatedAt.IsZero() {
		updatedAt := record.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
