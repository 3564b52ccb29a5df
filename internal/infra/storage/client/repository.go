package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/PT-BookingService/internal/domain"
	"github.com/m04kA/PT-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PT-BookingService/pkg/psqlbuilder"
)

const (
	constraintClientName = "clients_name_key"
	pgUniqueViolation    = "23505"
)

// Repository репозиторий для работы с клиентами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового клиента
func (r *Repository) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("clients").
		Columns(
			"name",
			"pin",
			"sessions_remaining",
			"sessions_expires_at",
		).
		Values(
			c.Name,
			c.PIN,
			c.SessionsRemaining,
			c.SessionsExpiresAt,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation && pqErr.Constraint == constraintClientName {
			return nil, ErrNameTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time

	return c, nil
}

// GetByID получает клиента по ID.
// Внутри транзакции добавляет FOR UPDATE: списание занятия должно
// выполняться на заблокированной строке клиента.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"name",
		"pin",
		"sessions_remaining",
		"sessions_expires_at",
		"created_at",
	).
		From("clients").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanClient(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// List получает всех клиентов, отсортированных по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Client, error) {
	return r.list(ctx, nil, "List")
}

// ListBookable получает клиентов с положительным остатком занятий
func (r *Repository) ListBookable(ctx context.Context) ([]*domain.Client, error) {
	return r.list(ctx, squirrel.Gt{"sessions_remaining": 0}, "ListBookable")
}

func (r *Repository) list(ctx context.Context, pred interface{}, method string) ([]*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"name",
		"pin",
		"sessions_remaining",
		"sessions_expires_at",
		"created_at",
	).
		From("clients").
		OrderBy("name ASC")

	if pred != nil {
		selectBuilder = selectBuilder.Where(pred)
	}

	query, args, err := selectBuilder.ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		var c domain.Client
		var createdAt sql.NullTime

		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.PIN,
			&c.SessionsRemaining,
			&c.SessionsExpiresAt,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}

		c.CreatedAt = createdAt.Time
		clients = append(clients, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return clients, nil
}

// UpdatePIN обновляет PIN клиента
func (r *Repository) UpdatePIN(ctx context.Context, id int64, pin string) error {
	return r.updateField(ctx, id, "pin", pin, "UpdatePIN")
}

// UpdateSessions устанавливает остаток занятий клиента
func (r *Repository) UpdateSessions(ctx context.Context, id int64, sessionsRemaining int) error {
	return r.updateField(ctx, id, "sessions_remaining", sessionsRemaining, "UpdateSessions")
}

// DecrementSessions списывает одно занятие с полом на нуле:
// GREATEST(sessions_remaining - 1, 0), остаток никогда не уходит в минус
func (r *Repository) DecrementSessions(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("clients").
		Set("sessions_remaining", squirrel.Expr("GREATEST(sessions_remaining - 1, 0)")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DecrementSessions - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DecrementSessions - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DecrementSessions - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrClientNotFound
	}

	return nil
}

// Delete удаляет клиента.
// Бронирования клиента должны быть удалены в той же транзакции
// (см. service/clients.Delete) - осиротевшие бронирования недопустимы.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("clients").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrClientNotFound
	}

	return nil
}

func (r *Repository) updateField(ctx context.Context, id int64, field string, value interface{}, method string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("clients").
		Set(field, value).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, method, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}

	if rowsAffected == 0 {
		return ErrClientNotFound
	}

	return nil
}

func (r *Repository) scanClient(row *sql.Row, method string) (*domain.Client, error) {
	var c domain.Client
	var createdAt sql.NullTime

	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.PIN,
		&c.SessionsRemaining,
		&c.SessionsExpiresAt,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan client: %v", ErrScanRow, method, err)
	}

	c.CreatedAt = createdAt.Time

	return &c, nil
}
