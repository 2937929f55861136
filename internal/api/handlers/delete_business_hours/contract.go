package delete_business_hours

import "context"

type HoursService interface {
	Clear(ctx context.Context, businessID, userID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
