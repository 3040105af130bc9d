package animation

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

// Repository документное хранилище анимаций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория анимаций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Save сохраняет анимацию (insert или полная перезапись документа)
func (r *Repository) Save(ctx context.Context, a *domain.Animation) error {
	doc, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal animation: %v", ErrEncodeDoc, err)
	}

	query, args, err := psqlbuilder.Insert("animations").
		Columns("id", "doc").
		Values(a.ID, doc).
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

// GetByID получает анимацию по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Animation, error) {
	query, args, err := psqlbuilder.Select("doc").
		From("animations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var doc []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, ErrAnimationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan document: %v", ErrScanRow, err)
	}

	var a domain.Animation
	if err := json.Unmarshal(doc, &a); err != nil {
		return nil, fmt.Errorf("%w: GetByID - unmarshal animation: %v", ErrDecodeDoc, err)
	}
	return &a, nil
}

// List получает все анимации, отсортированные по индексу порядка
// Хранилище не гарантирует порядок коллекции, сортировка на нашей стороне
func (r *Repository) List(ctx context.Context) ([]*domain.Animation, error) {
	query, args, err := psqlbuilder.Select("doc").
		From("animations").
		OrderBy("(doc->>'order')::int ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	animations := make([]*domain.Animation, 0)
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("%w: List - scan document: %v", ErrScanRow, err)
		}
		var a domain.Animation
		if err := json.Unmarshal(doc, &a); err != nil {
			return nil, fmt.Errorf("%w: List - unmarshal animation: %v", ErrDecodeDoc, err)
		}
		animations = append(animations, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrExecQuery, err)
	}
	return animations, nil
}

// CountByAnimator возвращает количество анимаций, закрепленных за аниматором
func (r *Repository) CountByAnimator(ctx context.Context, animator string) (int, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("animations").
		Where(squirrel.Eq{"doc->>'animator'": animator}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByAnimator - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByAnimator - scan count: %v", ErrScanRow, err)
	}
	return count, nil
}

// RenameAnimator переписывает денормализованное имя аниматора во всех
// анимациях, ссылающихся на старое имя. Возвращает число обновленных записей
func (r *Repository) RenameAnimator(ctx context.Context, oldName, newName string) (int64, error) {
	newDoc, err := json.Marshal(newName)
	if err != nil {
		return 0, fmt.Errorf("%w: RenameAnimator - marshal name: %v", ErrEncodeDoc, err)
	}

	query, args, err := psqlbuilder.Update("animations").
		Set("doc", squirrel.Expr("jsonb_set(doc, '{animator}', ?::jsonb)", string(newDoc))).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"doc->>'animator'": oldName}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: RenameAnimator - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: RenameAnimator - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: RenameAnimator - rows affected: %v", ErrExecQuery, err)
	}
	return affected, nil
}

// Remove удаляет анимацию по ID
func (r *Repository) Remove(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Delete("animations").
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
		return ErrAnimationNotFound
	}
	return nil
}
