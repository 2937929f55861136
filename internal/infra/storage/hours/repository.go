package hours

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

const tableName = "business_hours"

var columns = []string{
	"business_id",
	"open_time",
	"close_time",
	"created_at",
	"updated_at",
}

// Repository репозиторий рабочих часов бизнеса.
// Одна запись на бизнес, время открытия и закрытия хранятся независимо (NULL = не задано)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает рабочие часы бизнеса
func (r *Repository) Get(ctx context.Context, businessID string) (*domain.BusinessHours, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	hours, err := scanHours(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan hours: %v", ErrScanRow, err)
	}

	return hours, nil
}

// Upsert создает запись или обновляет переданные значения одним запросом.
// nil значение не трогает сохраненное, поэтому одновременные частичные обновления не затирают друг друга.
// Возвращает запись целиком, как она сохранена
func (r *Repository) Upsert(ctx context.Context, hours *domain.BusinessHours) (*domain.BusinessHours, error) {
	query, args, err := upsertQuery(hours)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	saved, err := scanHours(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return saved, nil
}

func upsertQuery(hours *domain.BusinessHours) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableName).
		Columns("business_id", "open_time", "close_time").
		Values(hours.BusinessID, toNullString(hours.OpenTime), toNullString(hours.CloseTime)).
		Suffix("ON CONFLICT (business_id) DO UPDATE SET " +
			"open_time = COALESCE(EXCLUDED.open_time, " + tableName + ".open_time), " +
			"close_time = COALESCE(EXCLUDED.close_time, " + tableName + ".close_time), " +
			"updated_at = now() " +
			"RETURNING " + strings.Join(columns, ", ")).
		ToSql()
}

// Delete удаляет рабочие часы бизнеса
func (r *Repository) Delete(ctx context.Context, businessID string) error {
	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrHoursNotFound
	}

	return nil
}

// List получает рабочие часы нескольких бизнесов.
// Пустой список businessIDs означает все бизнесы
func (r *Repository) List(ctx context.Context, businessIDs []string) ([]*domain.BusinessHours, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy("business_id ASC")

	if len(businessIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"business_id": businessIDs})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BusinessHours, 0)
	for rows.Next() {
		hours, err := scanHours(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		result = append(result, hours)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Helper methods

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHours(row rowScanner) (*domain.BusinessHours, error) {
	var (
		hours                domain.BusinessHours
		openTime, closeTime  sql.NullString
		createdAt, updatedAt sql.NullTime
	)

	if err := row.Scan(&hours.BusinessID, &openTime, &closeTime, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	hours.OpenTime = fromNullString(openTime)
	hours.CloseTime = fromNullString(closeTime)
	hours.CreatedAt = createdAt.Time
	hours.UpdatedAt = updatedAt.Time

	return &hours, nil
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
