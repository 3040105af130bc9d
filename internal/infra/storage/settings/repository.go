package settings

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

// Repository хранилище единственного документа настроек
// Документ хранится под известным константным id (domain.SettingsDocID)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get загружает глобальный документ настроек
func (r *Repository) Get(ctx context.Context) (*domain.AppSettings, error) {
	query, args, err := psqlbuilder.Select("doc").
		From("settings").
		Where(squirrel.Eq{"id": domain.SettingsDocID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var doc []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan document: %v", ErrScanRow, err)
	}

	var s domain.AppSettings
	if err := json.Unmarshal(doc, &s); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal settings: %v", ErrDecodeDoc, err)
	}
	return &s, nil
}

// Save сохраняет глобальный документ настроек целиком (last-writer-wins)
func (r *Repository) Save(ctx context.Context, s *domain.AppSettings) error {
	doc, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal settings: %v", ErrEncodeDoc, err)
	}

	query, args, err := psqlbuilder.Insert("settings").
		Columns("id", "doc").
		Values(domain.SettingsDocID, doc).
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
