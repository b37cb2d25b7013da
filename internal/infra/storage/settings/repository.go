package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/GH-ReservationService/internal/domain"
	"github.com/m04kA/GH-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/GH-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с системными настройками
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll получает все строки system_settings
func (r *Repository) GetAll(ctx context.Context) ([]*domain.SystemSetting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "key", "value", "description").
		From("system_settings").
		OrderBy("key ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.SystemSetting, 0)
	for rows.Next() {
		var s domain.SystemSetting
		if err := rows.Scan(&s.ID, &s.Key, &s.Value, &s.Description); err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetByKey получает настройку по ключу
func (r *Repository) GetByKey(ctx context.Context, key string) (*domain.SystemSetting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "key", "value", "description").
		From("system_settings").
		Where(squirrel.Eq{"key": key}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.SystemSetting
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Key, &s.Value, &s.Description)

	if err == sql.ErrNoRows {
		return nil, ErrSettingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - scan row: %v", ErrScanRow, err)
	}

	return &s, nil
}

// UpdateValue обновляет значение настройки по ключу
func (r *Repository) UpdateValue(ctx context.Context, key string, value string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("system_settings").
		Set("value", value).
		Where(squirrel.Eq{"key": key}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateValue - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateValue - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateValue - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSettingNotFound
	}

	return nil
}
