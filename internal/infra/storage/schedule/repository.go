package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/GH-ReservationService/internal/domain"
	"github.com/m04kA/GH-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/GH-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с часами работы ресторана
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория часов работы
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll получает расписание на все дни недели.
// Строки упорядочены с понедельника по воскресенье.
func (r *Repository) GetAll(ctx context.Context) ([]*domain.OpeningHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "day", "open", "close", "closed").
		From("opening_hours").
		OrderBy("sort_order ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]*domain.OpeningHours, 0, 7)
	for rows.Next() {
		var h domain.OpeningHours
		if err := rows.Scan(&h.ID, &h.Day, &h.Open, &h.Close, &h.Closed); err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		hours = append(hours, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// GetByDay получает расписание на конкретный день недели по ключу ("monday")
func (r *Repository) GetByDay(ctx context.Context, dayID string) (*domain.OpeningHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "day", "open", "close", "closed").
		From("opening_hours").
		Where(squirrel.Eq{"id": dayID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDay - build select query: %v", ErrBuildQuery, err)
	}

	var h domain.OpeningHours
	err = executor.QueryRowContext(ctx, query, args...).Scan(&h.ID, &h.Day, &h.Open, &h.Close, &h.Closed)

	if err == sql.ErrNoRows {
		return nil, ErrDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDay - scan row: %v", ErrScanRow, err)
	}

	return &h, nil
}

// Update обновляет время работы одного дня недели
func (r *Repository) Update(ctx context.Context, h *domain.OpeningHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("opening_hours").
		Set("open", h.Open).
		Set("close", h.Close).
		Set("closed", h.Closed).
		Where(squirrel.Eq{"id": h.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDayNotFound
	}

	return nil
}

// InsertDefaults заполняет пустую таблицу дефолтным расписанием.
// Вызывается сервисом при первом чтении, когда строк ещё нет.
func (r *Repository) InsertDefaults(ctx context.Context, hours []*domain.OpeningHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("opening_hours").
		Columns("id", "day", "open", "close", "closed", "sort_order")

	for i, h := range hours {
		insertBuilder = insertBuilder.Values(h.ID, h.Day, h.Open, h.Close, h.Closed, i)
	}

	// Конкурирующий seed не должен падать на дубликатах
	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: InsertDefaults - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: InsertDefaults - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
