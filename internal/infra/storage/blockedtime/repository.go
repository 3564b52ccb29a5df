package blockedtime

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/PT-BookingService/internal/domain"
	"github.com/m04kA/PT-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PT-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с заблокированными интервалами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория заблокированных интервалов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый заблокированный интервал
func (r *Repository) Create(ctx context.Context, bt *domain.BlockedTime) (*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_times").
		Columns(
			"start_time",
			"end_time",
			"day_of_week",
		).
		Values(
			bt.StartTime,
			bt.EndTime,
			bt.DayOfWeek,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&bt.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	bt.CreatedAt = createdAt.Time

	return bt, nil
}

// List получает все заблокированные интервалы
func (r *Repository) List(ctx context.Context) ([]*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"start_time",
		"end_time",
		"day_of_week",
		"created_at",
	).
		From("blocked_times").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blockedTimes := make([]*domain.BlockedTime, 0)
	for rows.Next() {
		var bt domain.BlockedTime
		var createdAt sql.NullTime

		err := rows.Scan(
			&bt.ID,
			&bt.StartTime,
			&bt.EndTime,
			&bt.DayOfWeek,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		bt.CreatedAt = createdAt.Time
		blockedTimes = append(blockedTimes, &bt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return blockedTimes, nil
}
