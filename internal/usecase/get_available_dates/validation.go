package get_available_dates

import "fmt"

// validateDays проверяет количество дней
func validateDays(days, maxDays int) error {
	if days < 0 || days > maxDays {
		return fmt.Errorf("%w: days must be in 0..%d, got %d", ErrInvalidInput, maxDays, days)
	}
	return nil
}
