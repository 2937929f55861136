package hours

import "errors"

var (
	// ErrHoursNotFound возвращается, когда рабочие часы бизнеса не заданы
	ErrHoursNotFound = errors.New("business hours not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец бизнеса
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
