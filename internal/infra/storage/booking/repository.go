package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	"github.com/m04kA/Barbershop-BookingService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL unique_violation
const pgUniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"barber_id",
	"service_id",
	"booking_date",
	"time_slot",
	"customer_name",
	"customer_phone",
	"style_notes",
	"barber_name",
	"service_name",
	"service_price",
	"created_at",
}

// Repository репозиторий журнала бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create вставляет бронирование одной атомарной операцией.
// Конфликт за слот решает уникальный индекс (barber_id, booking_date, time_slot):
// предварительной проверки доступности здесь нет намеренно — два конкурентных
// insert для одного ключа не могут пройти оба, проигравший получает ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"barber_id",
			"service_id",
			"booking_date",
			"time_slot",
			"customer_name",
			"customer_phone",
			"style_notes",
			"barber_name",
			"service_name",
			"service_price",
		).
		Values(
			booking.BarberID,
			booking.ServiceID,
			booking.BookingDate.Format(domain.DateFormat),
			booking.TimeSlot,
			booking.CustomerName,
			booking.CustomerPhone,
			booking.StyleNotes,
			booking.BarberName,
			booking.ServiceName,
			booking.ServicePrice,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// ListTakenSlots возвращает занятые метки слотов для пары (барбер, дата).
// Снимок состояния журнала на момент вызова, без побочных эффектов.
func (r *Repository) ListTakenSlots(ctx context.Context, barberID int64, date string) ([]string, error) {
	query, args, err := psqlbuilder.Select("time_slot").
		From("bookings").
		Where(squirrel.Eq{"barber_id": barberID, "booking_date": date}).
		OrderBy("time_slot ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListTakenSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListTakenSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]string, 0)
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("%w: ListTakenSlots - scan time_slot: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListTakenSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// GetWithFilter получает бронирования с фильтрацией по дате и/или барберу.
// Для выборки на конкретную дату сортируем по времени слота,
// для общей выборки — сначала новые даты (как в админской панели).
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": filter.Date.Format(domain.DateFormat)})
	}
	if filter.BarberID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"barber_id": *filter.BarberID})
	}

	if filter.Date != nil && filter.BarberID == nil {
		selectBuilder = selectBuilder.OrderBy("time_slot ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC, time_slot ASC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Delete удаляет бронирование (административный канал, история не сохраняется)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.BarberID,
		&booking.ServiceID,
		&booking.BookingDate,
		&booking.TimeSlot,
		&booking.CustomerName,
		&booking.CustomerPhone,
		&booking.StyleNotes,
		&booking.BarberName,
		&booking.ServiceName,
		&booking.ServicePrice,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
