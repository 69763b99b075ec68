package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/CWS-PassService/internal/domain"
	"github.com/m04kA/CWS-PassService/pkg/dbmetrics"
	"github.com/m04kA/CWS-PassService/pkg/psqlbuilder"
)

// Repository репозиторий бронирований пропусков.
// Даты пропуска хранятся отдельными строками в booking_dates -
// это позволяет считать занятость окна одним запросом по датам.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var bookingColumns = []string{
	"id",
	"user_id",
	"site_id",
	"resource_id",
	"pass_type",
	"seats",
	"pre_tax",
	"tax",
	"total",
	"status",
	"selection_token",
	"checkout_session_id",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Create создает бронирование и строки его дат.
// Вызывается внутри транзакции (создание + снимок выбора атомарны).
func (r *Repository) Create(ctx context.Context, b *domain.PassBooking) (*domain.PassBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("pass_bookings").
		Columns(
			"user_id",
			"site_id",
			"resource_id",
			"pass_type",
			"seats",
			"pre_tax",
			"tax",
			"total",
			"status",
			"selection_token",
			"checkout_session_id",
		).
		Values(
			b.UserID,
			b.SiteID,
			b.ResourceID,
			b.PassType,
			b.Seats,
			b.PreTax,
			b.Tax,
			b.Total,
			b.Status,
			b.SelectionToken,
			b.CheckoutSessionID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	if len(b.Dates) > 0 {
		datesInsert := psqlbuilder.Insert("booking_dates").Columns("booking_id", "date")
		for _, d := range b.Dates {
			datesInsert = datesInsert.Values(b.ID, d)
		}

		query, args, err := datesInsert.ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build dates insert: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: Create - execute dates insert: %v", ErrExecQuery, err)
		}
	}

	return b, nil
}

// GetByID получает бронирование по ID вместе с датами
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.PassBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("pass_bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan: %v", ErrScanRow, err)
	}

	if err := r.loadDates(ctx, executor, []*domain.PassBooking{b}); err != nil {
		return nil, err
	}

	return b, nil
}

// GetBySelectionToken получает бронирование по токену снимка выбора.
// Токен уникален - по нему платежный шлюз ссылается на бронирование.
func (r *Repository) GetBySelectionToken(ctx context.Context, token string) (*domain.PassBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("pass_bookings").
		Where(squirrel.Eq{"selection_token": token}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySelectionToken - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySelectionToken - scan: %v", ErrScanRow, err)
	}

	if err := r.loadDates(ctx, executor, []*domain.PassBooking{b}); err != nil {
		return nil, err
	}

	return b, nil
}

// GetByUserID получает бронирования пользователя, опционально по статусу,
// новые первыми
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.PassBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(bookingColumns...).
		From("pass_bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	if status != nil {
		builder = builder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.PassBooking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows: %v", ErrExecQuery, err)
	}

	if err := r.loadDates(ctx, executor, bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

// UpdateStatus обновляет статус бронирования.
// Для отмены дополнительно фиксируется cancelled_at.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update("pass_bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if status == domain.BookingStatusCancelled {
		builder = builder.Set("cancelled_at", squirrel.Expr("NOW()"))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// ListResources получает все ресурсы с названиями площадок
func (r *Repository) ListResources(ctx context.Context) ([]*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"r.id",
		"r.site_id",
		"s.name",
		"r.capacity",
	).
		From("resources r").
		Join("sites s ON s.id = r.site_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListResources - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListResources - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	resources := make([]*domain.Resource, 0)
	for rows.Next() {
		var res domain.Resource
		var capacity sql.NullInt64
		if err := rows.Scan(&res.ID, &res.SiteID, &res.SiteName, &capacity); err != nil {
			return nil, fmt.Errorf("%w: ListResources - scan: %v", ErrScanRow, err)
		}
		// Вместимость по умолчанию, если не задана
		res.Capacity = domain.DefaultResourceCapacity
		if capacity.Valid && capacity.Int64 > 0 {
			res.Capacity = int(capacity.Int64)
		}
		resources = append(resources, &res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListResources - rows: %v", ErrExecQuery, err)
	}

	return resources, nil
}

// GetResource получает ресурс по ID вместе с названием площадки
func (r *Repository) GetResource(ctx context.Context, id int64) (*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"r.id",
		"r.site_id",
		"s.name",
		"r.capacity",
	).
		From("resources r").
		Join("sites s ON s.id = r.site_id").
		Where(squirrel.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetResource - build select query: %v", ErrBuildQuery, err)
	}

	var res domain.Resource
	var capacity sql.NullInt64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &res.SiteID, &res.SiteName, &capacity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetResource - scan: %v", ErrScanRow, err)
	}

	res.Capacity = domain.DefaultResourceCapacity
	if capacity.Valid && capacity.Int64 > 0 {
		res.Capacity = int(capacity.Int64)
	}

	return &res, nil
}

// MaxBookedSeatsPerDay возвращает пиковую дневную загрузку ресурса
// по указанным дням: максимум по дням суммы мест активных бронирований
func (r *Repository) MaxBookedSeatsPerDay(ctx context.Context, resourceID int64, dates []time.Time) (int, error) {
	if len(dates) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	perDay := psqlbuilder.Select("d.date", "SUM(b.seats) AS day_total").
		From("pass_bookings b").
		Join("booking_dates d ON d.booking_id = b.id").
		Where(squirrel.Eq{"b.resource_id": resourceID}).
		Where(squirrel.Eq{"d.date": dates}).
		Where(squirrel.NotEq{"b.status": domain.InactiveBookingStatuses}).
		GroupBy("d.date")

	query, args, err := psqlbuilder.Select("COALESCE(MAX(day_total), 0)").
		FromSelect(perDay, "per_day").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: MaxBookedSeatsPerDay - build select query: %v", ErrBuildQuery, err)
	}

	var maxSeats int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&maxSeats); err != nil {
		return 0, fmt.Errorf("%w: MaxBookedSeatsPerDay - scan: %v", ErrScanRow, err)
	}

	return maxSeats, nil
}

// ListBookedSeats получает строки (ресурс, места) активных бронирований,
// у которых хотя бы один день попадает в окно [from, to] включительно
func (r *Repository) ListBookedSeats(ctx context.Context, from, to time.Time) ([]domain.ResourceBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("b.resource_id", "b.seats").
		From("pass_bookings b").
		Join("booking_dates d ON d.booking_id = b.id").
		Where(squirrel.GtOrEq{"d.date": from}).
		Where(squirrel.LtOrEq{"d.date": to}).
		Where(squirrel.NotEq{"b.status": domain.InactiveBookingStatuses}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookedSeats - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookedSeats - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	booked := make([]domain.ResourceBooking, 0)
	for rows.Next() {
		var rb domain.ResourceBooking
		if err := rows.Scan(&rb.ResourceID, &rb.Seats); err != nil {
			return nil, fmt.Errorf("%w: ListBookedSeats - scan: %v", ErrScanRow, err)
		}
		booked = append(booked, rb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBookedSeats - rows: %v", ErrExecQuery, err)
	}

	return booked, nil
}

// loadDates дозагружает даты для набора бронирований одним запросом
func (r *Repository) loadDates(ctx context.Context, executor DBExecutor, bookings []*domain.PassBooking) error {
	if len(bookings) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(bookings))
	byID := make(map[int64]*domain.PassBooking, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
		byID[b.ID] = b
	}

	query, args, err := psqlbuilder.Select("booking_id", "date").
		From("booking_dates").
		Where(squirrel.Eq{"booking_id": ids}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadDates - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var bookingID int64
		var date time.Time
		if err := rows.Scan(&bookingID, &date); err != nil {
			return fmt.Errorf("%w: loadDates - scan: %v", ErrScanRow, err)
		}
		if b, ok := byID[bookingID]; ok {
			b.Dates = append(b.Dates, date)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadDates - rows: %v", ErrExecQuery, err)
	}

	return nil
}

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row scanner) (*domain.PassBooking, error) {
	var b domain.PassBooking
	var checkoutSessionID sql.NullString
	var cancelledAt sql.NullTime
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.SiteID,
		&b.ResourceID,
		&b.PassType,
		&b.Seats,
		&b.PreTax,
		&b.Tax,
		&b.Total,
		&b.Status,
		&b.SelectionToken,
		&checkoutSessionID,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if checkoutSessionID.Valid {
		b.CheckoutSessionID = &checkoutSessionID.String
	}
	if cancelledAt.Valid {
		b.CancelledAt = &cancelledAt.Time
	}
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}
