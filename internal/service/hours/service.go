package hours

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	hoursRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/hours"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/hours/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Service сервис управления рабочими часами бизнеса
type Service struct {
	hoursRepo HoursRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса рабочих часов
func NewService(hoursRepo HoursRepository, logger Logger) *Service {
	return &Service{
		hoursRepo: hoursRepo,
		logger:    logger,
	}
}

// Get возвращает рабочие часы бизнеса.
// Публичный метод. Если часы не заданы, возвращаются значения по умолчанию
func (s *Service) Get(ctx context.Context, businessID string) (*models.HoursResponse, error) {
	s.logger.Info("Get: fetching hours for business=%s", businessID)

	record, err := s.hoursRepo.Get(ctx, businessID)
	if err != nil {
		if !errors.Is(err, hoursRepo.ErrHoursNotFound) {
			s.logger.Error("Get: repository error for business=%s: %v", businessID, err)
			return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
		}
		record = nil
	}

	hours, err := availability.ResolveHours(record)
	if err != nil {
		s.logger.Error("Get: stored hours of business=%s are malformed: %v", businessID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return models.FromDomain(businessID, record, hours), nil
}

// Set сохраняет рабочие часы.
// Доступно только владельцу бизнеса. Переданные значения нормализуются к виду "h:mm AM"
// (конец дня остается "24:00") и объединяются с уже сохраненными
func (s *Service) Set(ctx context.Context, req *models.SetHoursRequest) (*models.HoursResponse, error) {
	s.logger.Info("Set: updating hours for business=%s by user=%s", req.BusinessID, req.UserID)

	// 1. Валидируем входные данные
	openTime, closeTime, err := validateSetRequest(req)
	if err != nil {
		s.logger.Warn("Set: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем права доступа
	if !isOwner(req.UserID, req.BusinessID) {
		s.logger.Warn("Set: user=%s is not the owner of business=%s", req.UserID, req.BusinessID)
		return nil, ErrAccessDenied
	}

	// 3. Сохраняем только переданные значения, объединение с сохраненными делает хранилище
	saved, err := s.hoursRepo.Upsert(ctx, &domain.BusinessHours{
		BusinessID: req.BusinessID,
		OpenTime:   openTime,
		CloseTime:  closeTime,
	})
	if err != nil {
		s.logger.Error("Set: repository error for business=%s: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: Set - repository error: %v", ErrInternal, err)
	}

	// 4. Считаем действующие часы по сохраненной записи
	hours, err := availability.ResolveHours(saved)
	if err != nil {
		// переданное значение сохранено, но второе в базе битое
		s.logger.Warn("Set: business=%s keeps malformed stored hours: %v", req.BusinessID, err)
		return models.FromRecord(saved), nil
	}
	if !hours.WrapsMidnight() && hours.OpenHour >= hours.CloseHour {
		s.logger.Warn("Set: business=%s hours %s - %s leave no bookable slots",
			req.BusinessID, ptr.Value(saved.OpenTime), ptr.Value(saved.CloseTime))
	}

	s.logger.Info("Set: successfully saved hours for business=%s (%s)", req.BusinessID, hours.Source)
	return models.FromDomain(req.BusinessID, saved, hours), nil
}

// Clear удаляет рабочие часы, после чего действуют значения по умолчанию.
// Доступно только владельцу бизнеса
func (s *Service) Clear(ctx context.Context, businessID, userID string) error {
	s.logger.Info("Clear: clearing hours for business=%s by user=%s", businessID, userID)

	if strings.TrimSpace(businessID) == "" {
		return fmt.Errorf("%w: businessID is required", ErrInvalidInput)
	}
	if !isOwner(userID, businessID) {
		s.logger.Warn("Clear: user=%s is not the owner of business=%s", userID, businessID)
		return ErrAccessDenied
	}

	if err := s.hoursRepo.Delete(ctx, businessID); err != nil {
		if errors.Is(err, hoursRepo.ErrHoursNotFound) {
			s.logger.Warn("Clear: no hours stored for business=%s", businessID)
			return ErrHoursNotFound
		}
		s.logger.Error("Clear: repository error for business=%s: %v", businessID, err)
		return fmt.Errorf("%w: Clear - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Clear: successfully cleared hours for business=%s", businessID)
	return nil
}

// List возвращает сохраненные часы указанных бизнесов (всех, если список пуст).
// Отладочный метод: бизнесы без записи в результат не попадают
func (s *Service) List(ctx context.Context, businessIDs []string) ([]*models.HoursResponse, error) {
	s.logger.Info("List: fetching hours for %d businesses", len(businessIDs))

	records, err := s.hoursRepo.List(ctx, businessIDs)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.HoursResponse, 0, len(records))
	for _, record := range records {
		hours, err := availability.ResolveHours(record)
		if err != nil {
			// битая запись не должна скрывать остальные
			s.logger.Warn("List: business=%s has malformed hours: %v", record.BusinessID, err)
			result = append(result, models.FromRecord(record))
			continue
		}
		result = append(result, models.FromDomain(record.BusinessID, record, hours))
	}

	s.logger.Info("List: successfully fetched %d records", len(result))
	return result, nil
}

// Helper methods

func isOwner(userID, businessID string) bool {
	return userID != "" && userID == businessID
}

// validateSetRequest проверяет запрос и возвращает нормализованные значения
func validateSetRequest(req *models.SetHoursRequest) (openTime, closeTime *string, err error) {
	if strings.TrimSpace(req.BusinessID) == "" {
		return nil, nil, fmt.Errorf("%w: businessID is required", ErrInvalidInput)
	}
	if req.OpenTime == nil && req.CloseTime == nil {
		return nil, nil, fmt.Errorf("%w: openTime or closeTime is required", ErrInvalidInput)
	}

	if req.OpenTime != nil {
		if openTime, err = canonical(*req.OpenTime); err != nil {
			return nil, nil, fmt.Errorf("%w: openTime: %v", ErrInvalidInput, err)
		}
	}
	if req.CloseTime != nil {
		if closeTime, err = canonical(*req.CloseTime); err != nil {
			return nil, nil, fmt.Errorf("%w: closeTime: %v", ErrInvalidInput, err)
		}
	}
	return openTime, closeTime, nil
}

func canonical(value string) (*string, error) {
	c, err := types.ParseClockTime(value)
	if err != nil {
		return nil, err
	}
	return ptr.Ptr(c.Label()), nil
}
