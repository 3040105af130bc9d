package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/ateliernature/animations-booking/internal/domain"
	"github.com/ateliernature/animations-booking/pkg/psqlbuilder"
)

// Repository документное хранилище бронирований (upsert по id)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Save сохраняет бронирование (insert или полная перезапись документа)
// Семантика last-writer-wins: версионирования и CAS нет
func (r *Repository) Save(ctx context.Context, b *domain.Booking) error {
	doc, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal booking: %v", ErrEncodeDoc, err)
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns("id", "doc").
		Values(b.ID, doc).
		Suffix("ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select("doc").
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var doc []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan document: %v", ErrScanRow, err)
	}

	var b domain.Booking
	if err := json.Unmarshal(doc, &b); err != nil {
		return nil, fmt.Errorf("%w: GetByID - unmarshal booking: %v", ErrDecodeDoc, err)
	}
	return &b, nil
}

// List получает бронирования с фильтрацией по периоду и статусу автобуса
// Хранилище не гарантирует порядок, поэтому сортируем по дате и часу здесь
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select("doc").
		From("bookings").
		OrderBy("doc->>'date' ASC, (doc->>'time')::int ASC")

	if filter.FromDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"doc->>'date'": *filter.FromDate})
	}
	if filter.ToDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"doc->>'date'": *filter.ToDate})
	}
	if filter.BusStatus != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"doc->>'busStatus'": string(*filter.BusStatus)})
	}
	if filter.NeedBus {
		// noBusRequired отсутствует или false
		selectBuilder = selectBuilder.Where("COALESCE((doc->>'noBusRequired')::bool, false) = false")
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

	return r.scanBookings(rows)
}

// CountByAnimation возвращает количество бронирований, ссылающихся на анимацию
// Используется для блокировки каскадного удаления анимации
func (r *Repository) CountByAnimation(ctx context.Context, animationID string) (int, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"doc->>'animationId'": animationID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByAnimation - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByAnimation - scan count: %v", ErrScanRow, err)
	}
	return count, nil
}

// Remove удаляет бронирование по ID
func (r *Repository) Remove(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Remove - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Remove - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Remove - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan document: %v", ErrScanRow, err)
		}
		var b domain.Booking
		if err := json.Unmarshal(doc, &b); err != nil {
			return nil, fmt.Errorf("%w: scanBookings - unmarshal booking: %v", ErrDecodeDoc, err)
		}
		bookings = append(bookings, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrExecQuery, err)
	}
	return bookings, nil
}
