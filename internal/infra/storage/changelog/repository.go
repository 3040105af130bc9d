package changelog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/ateliernature/animations-booking/internal/domain"
	"github.com/ateliernature/animations-booking/pkg/psqlbuilder"
)

// DBExecutor интерфейс для выполнения запросов (*sql.DB или *sql.Tx)
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Repository документное хранилище записей журнала изменений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Save сохраняет запись журнала (insert или полная перезапись)
func (r *Repository) Save(ctx context.Context, e *domain.ChangelogEntry) error {
	doc, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal entry: %v", ErrEncodeDoc, err)
	}

	query, args, err := psqlbuilder.Insert("changelog").
		Columns("id", "doc").
		Values(e.ID, doc).
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

// List получает записи журнала, новые сверху
func (r *Repository) List(ctx context.Context) ([]*domain.ChangelogEntry, error) {
	query, args, err := psqlbuilder.Select("doc").
		From("changelog").
		OrderBy("doc->>'date' DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.ChangelogEntry, 0)
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("%w: List - scan document: %v", ErrScanRow, err)
		}
		var e domain.ChangelogEntry
		if err := json.Unmarshal(doc, &e); err != nil {
			return nil, fmt.Errorf("%w: List - unmarshal entry: %v", ErrDecodeDoc, err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrExecQuery, err)
	}
	return entries, nil
}

// Remove удаляет запись журнала по ID
func (r *Repository) Remove(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Delete("changelog").
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
		return ErrEntryNotFound
	}
	return nil
}
