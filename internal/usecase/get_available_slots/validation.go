package get_available_slots

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateHorizon проверяет, что дата не дальше maxHorizonDays дней от сегодняшней
func validateHorizon(day, today time.Time, maxHorizonDays int) error {
	if maxHorizonDays <= 0 {
		return nil
	}

	lastDay := today.AddDate(0, 0, maxHorizonDays-1)
	if day.After(lastDay) {
		return fmt.Errorf("%w: %w: can only book %d days ahead", ErrInvalidInput, ErrDateTooFarInFuture, maxHorizonDays)
	}
	return nil
}
