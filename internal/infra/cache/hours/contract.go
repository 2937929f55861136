package hours

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Repository интерфейс основного хранилища рабочих часов
type Repository interface {
	Get(ctx context.Context, businessID string) (*domain.BusinessHours, error)
	Upsert(ctx context.Context, hours *domain.BusinessHours) (*domain.BusinessHours, error)
	Delete(ctx context.Context, businessID string) error
	List(ctx context.Context, businessIDs []string) ([]*domain.BusinessHours, error)
}

// RedisClient подмножество команд redis, которые использует кеш (*redis.Client его реализует)
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Recorder получатель метрик кеша
type Recorder interface {
	ObserveCacheLookup(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
