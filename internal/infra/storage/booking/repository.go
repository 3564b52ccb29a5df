package booking

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

// Имена constraint'ов из migrations/001_init.sql.
// Частичные уникальные индексы - точка сериализации конкурентных create:
// два параллельных INSERT на один слот не могут закоммититься оба.
const (
	constraintSlotUpcoming      = "bookings_slot_upcoming_key"
	constraintClientDayUpcoming = "bookings_client_day_upcoming_key"
)

const pgUniqueViolation = "23505"

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование в статусе upcoming.
// Если в контексте передана активная транзакция, использует её.
// Нарушение уникальности слота или дня клиента возвращается как
// ErrSlotTaken / ErrClientDayTaken - даже если предварительные проверки
// usecase прошли по устаревшему снимку данных.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"client_id",
			"date",
			"hour",
			"status",
		).
		Values(
			b.ClientID,
			b.Date,
			b.Hour,
			b.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
	)

	if err != nil {
		if conflictErr := mapUniqueViolation(err); conflictErr != nil {
			return nil, conflictErr
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time

	return b, nil
}

// GetByID получает бронирование по ID.
// Внутри транзакции добавляет FOR UPDATE, чтобы конкурентные
// complete/cancel/expire на одной строке выполнялись последовательно.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"client_id",
		"date",
		"hour",
		"status",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Booking
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.ClientID,
		&b.Date,
		&b.Hour,
		&b.Status,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time

	return &b, nil
}

// ExistsUpcomingSlot проверяет, занят ли слот (date, hour) upcoming бронированием
func (r *Repository) ExistsUpcomingSlot(ctx context.Context, date string, hour int) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{
			"date":   date,
			"hour":   hour,
			"status": domain.StatusUpcoming,
		}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsUpcomingSlot - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsUpcomingSlot - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// HasUpcomingOnDate проверяет, есть ли у клиента upcoming бронирование на дату
func (r *Repository) HasUpcomingOnDate(ctx context.Context, clientID int64, date string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{
			"client_id": clientID,
			"date":      date,
			"status":    domain.StatusUpcoming,
		}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasUpcomingOnDate - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasUpcomingOnDate - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// ListUpcomingInRange получает upcoming бронирования с date в [startDate, endDate).
// Один bulk-запрос для построения сетки доступности.
func (r *Repository) ListUpcomingInRange(ctx context.Context, startDate, endDate string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"client_id",
		"date",
		"hour",
		"status",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"status": domain.StatusUpcoming}).
		Where(squirrel.GtOrEq{"date": startDate}).
		Where(squirrel.Lt{"date": endDate}).
		OrderBy("date ASC, hour ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcomingInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcomingInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListUpcomingByClient получает upcoming бронирования клиента
func (r *Repository) ListUpcomingByClient(ctx context.Context, clientID int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"client_id",
		"date",
		"hour",
		"status",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{
			"client_id": clientID,
			"status":    domain.StatusUpcoming,
		}).
		OrderBy("date ASC, hour ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcomingByClient - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcomingByClient - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListFinishedUpcoming получает upcoming бронирования, часовое окно которых
// полностью истекло: date < today, либо date = today и hour < currentHour.
// Используется авто-завершением.
func (r *Repository) ListFinishedUpcoming(ctx context.Context, today string, currentHour int) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"client_id",
		"date",
		"hour",
		"status",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"status": domain.StatusUpcoming}).
		Where(squirrel.Or{
			squirrel.Lt{"date": today},
			squirrel.And{
				squirrel.Eq{"date": today},
				squirrel.Lt{"hour": currentHour},
			},
		}).
		OrderBy("date ASC, hour ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListFinishedUpcoming - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListFinishedUpcoming - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListScheduleView получает расписание тренера: все upcoming бронирования
// плюс завершённые и отменённые за сегодня, с именем клиента и остатком
// занятий. Сортировка по дате и часу.
func (r *Repository) ListScheduleView(ctx context.Context, today string) ([]*domain.BookingWithClient, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.client_id",
		"b.date",
		"b.hour",
		"b.status",
		"b.created_at",
		"c.name",
		"c.sessions_remaining",
	).
		From("bookings b").
		Join("clients c ON c.id = b.client_id").
		Where(squirrel.Or{
			squirrel.Eq{"b.status": domain.StatusUpcoming},
			squirrel.And{
				squirrel.Eq{"b.date": today},
				squirrel.Eq{"b.status": []domain.BookingStatus{domain.StatusCompleted, domain.StatusCancelled}},
			},
		}).
		OrderBy("b.date ASC, b.hour ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListScheduleView - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListScheduleView - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookingsWithClient(rows)
}

// ListInProgress получает upcoming бронирования, идущие прямо сейчас:
// date = today и hour = currentHour
func (r *Repository) ListInProgress(ctx context.Context, today string, currentHour int) ([]*domain.BookingWithClient, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.client_id",
		"b.date",
		"b.hour",
		"b.status",
		"b.created_at",
		"c.name",
		"c.sessions_remaining",
	).
		From("bookings b").
		Join("clients c ON c.id = b.client_id").
		Where(squirrel.Eq{
			"b.status": domain.StatusUpcoming,
			"b.date":   today,
			"b.hour":   currentHour,
		}).
		OrderBy("b.hour ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListInProgress - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListInProgress - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookingsWithClient(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// DeleteByClient удаляет все бронирования клиента.
// Вызывается только из транзакции удаления клиента (no orphan bookings).
func (r *Repository) DeleteByClient(ctx context.Context, clientID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"client_id": clientID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByClient - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByClient - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var createdAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.ClientID,
			&b.Date,
			&b.Hour,
			&b.Status,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// scanBookingsWithClient сканирует результаты join-запроса с данными клиента
func (r *Repository) scanBookingsWithClient(rows *sql.Rows) ([]*domain.BookingWithClient, error) {
	bookings := make([]*domain.BookingWithClient, 0)

	for rows.Next() {
		var b domain.BookingWithClient
		var createdAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.ClientID,
			&b.Date,
			&b.Hour,
			&b.Status,
			&createdAt,
			&b.ClientName,
			&b.ClientSessions,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookingsWithClient - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookingsWithClient - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// mapUniqueViolation конвертирует нарушение частичного уникального индекса
// в доменную ошибку конфликта. Возвращает nil, если ошибка не о уникальности.
func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != pgUniqueViolation {
		return nil
	}

	switch pqErr.Constraint {
	case constraintSlotUpcoming:
		return ErrSlotTaken
	case constraintClientDayUpcoming:
		return ErrClientDayTaken
	default:
		return nil
	}
}
