package hours

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

const keyPrefix = "business_hours:"

// DefaultTTL время жизни записи в кеше по умолчанию
const DefaultTTL = 5 * time.Minute

// Результаты обращения к кешу для метрик
const (
	resultHit   = "hit"
	resultMiss  = "miss"
	resultError = "error"
)

// cachedHours формат записи в redis
type cachedHours struct {
	BusinessID string    `json:"businessId"`
	OpenTime   *string   `json:"openTime,omitempty"`
	CloseTime  *string   `json:"closeTime,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Cache read-through кеш рабочих часов поверх основного репозитория.
// Ошибки redis не пробрасываются: запрос уходит в репозиторий, ошибка логируется
type Cache struct {
	repo     Repository
	rdb      RedisClient
	ttl      time.Duration
	recorder Recorder
	logger   Logger
}

// NewCache создает кеш. recorder может быть nil
func NewCache(repo Repository, rdb RedisClient, ttl time.Duration, recorder Recorder, logger Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		repo:     repo,
		rdb:      rdb,
		ttl:      ttl,
		recorder: recorder,
		logger:   logger,
	}
}

// Get возвращает рабочие часы из кеша или из репозитория (с заполнением кеша).
// Отсутствие записи в репозитории не кешируется
func (c *Cache) Get(ctx context.Context, businessID string) (*domain.BusinessHours, error) {
	key := cacheKey(businessID)

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached cachedHours
		if err := json.Unmarshal(raw, &cached); err == nil {
			c.observe(resultHit)
			return cached.toDomain(), nil
		}
		c.logger.Warn("HoursCache: corrupted entry key=%s, reloading", key)
		c.observe(resultError)
	case errors.Is(err, redis.Nil):
		c.observe(resultMiss)
	default:
		c.logger.Warn("HoursCache: redis get key=%s failed: %v", key, err)
		c.observe(resultError)
	}

	hours, err := c.repo.Get(ctx, businessID)
	if err != nil {
		return nil, err
	}

	c.store(ctx, hours)
	return hours, nil
}

// Upsert сохраняет часы в репозиторий и сбрасывает запись в кеше
func (c *Cache) Upsert(ctx context.Context, hours *domain.BusinessHours) (*domain.BusinessHours, error) {
	saved, err := c.repo.Upsert(ctx, hours)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, hours.BusinessID)
	return saved, nil
}

// Delete удаляет часы из репозитория и из кеша
func (c *Cache) Delete(ctx context.Context, businessID string) error {
	if err := c.repo.Delete(ctx, businessID); err != nil {
		return err
	}
	c.invalidate(ctx, businessID)
	return nil
}

// List не кешируется
func (c *Cache) List(ctx context.Context, businessIDs []string) ([]*domain.BusinessHours, error) {
	return c.repo.List(ctx, businessIDs)
}

// Helper methods

func (c *Cache) store(ctx context.Context, hours *domain.BusinessHours) {
	payload, err := json.Marshal(fromDomain(hours))
	if err != nil {
		c.logger.Error("HoursCache: marshal business=%s: %v", hours.BusinessID, err)
		return
	}
	if err := c.rdb.Set(ctx, cacheKey(hours.BusinessID), payload, c.ttl).Err(); err != nil {
		c.logger.Warn("HoursCache: redis set business=%s failed: %v", hours.BusinessID, err)
	}
}

func (c *Cache) invalidate(ctx context.Context, businessID string) {
	if err := c.rdb.Del(ctx, cacheKey(businessID)).Err(); err != nil {
		c.logger.Warn("HoursCache: redis del business=%s failed: %v", businessID, err)
	}
}

func (c *Cache) observe(result string) {
	if c.recorder != nil {
		c.recorder.ObserveCacheLookup(result)
	}
}

func cacheKey(businessID string) string {
	return keyPrefix + businessID
}

func fromDomain(h *domain.BusinessHours) cachedHours {
	return cachedHours{
		BusinessID: h.BusinessID,
		OpenTime:   h.OpenTime,
		CloseTime:  h.CloseTime,
		CreatedAt:  h.CreatedAt,
		UpdatedAt:  h.UpdatedAt,
	}
}

func (c cachedHours) toDomain() *domain.BusinessHours {
	return &domain.BusinessHours{
		BusinessID: c.BusinessID,
		OpenTime:   c.OpenTime,
		CloseTime:  c.CloseTime,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
