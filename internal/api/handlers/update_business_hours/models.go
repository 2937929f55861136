package update_business_hours

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/service/hours/models"
)

// UpdateBusinessHoursRequest HTTP request model.
// Незаданное поле сохраняет текущее значение
type UpdateBusinessHoursRequest struct {
	OpenTime  *string `json:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateBusinessHoursRequest) ToServiceRequest(businessID, userID string) *models.SetHoursRequest {
	return &models.SetHoursRequest{
		UserID:     userID,
		BusinessID: businessID,
		OpenTime:   r.OpenTime,
		CloseTime:  r.CloseTime,
	}
}
