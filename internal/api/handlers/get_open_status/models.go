package get_open_status

import (
	"time"

	getOpenStatus "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_open_status"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// OpenStatusResponse HTTP response model
type OpenStatusResponse struct {
	BusinessID string    `json:"businessId"`
	IsOpen     bool      `json:"isOpen"`
	Opening    string    `json:"opening"`
	Closing    string    `json:"closing"`
	Source     string    `json:"source"`
	CheckedAt  time.Time `json:"checkedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getOpenStatus.Response) *OpenStatusResponse {
	return &OpenStatusResponse{
		BusinessID: resp.BusinessID,
		IsOpen:     resp.IsOpen,
		Opening:    types.FormatClock(resp.Hours.OpenHour, resp.Hours.OpenMinute),
		Closing:    types.FormatClock(resp.Hours.CloseHour, resp.Hours.CloseMinute),
		Source:     string(resp.Hours.Source),
		CheckedAt:  resp.CheckedAt,
	}
}
