package exclusion

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

var exclusionColumns = []string{
	"id",
	"barber_id",
	"excluded_date",
	"reason",
	"created_at",
}

// Repository репозиторий календаря исключений (полнодневные блокировки барбера)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория исключений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет исключение. Повтор для той же пары (barber, date)
// возвращает ErrDuplicateExclusion через уникальный индекс.
func (r *Repository) Create(ctx context.Context, excl *domain.Exclusion) (*domain.Exclusion, error) {
	query, args, err := psqlbuilder.Insert("barber_exclusions").
		Columns("barber_id", "excluded_date", "reason").
		Values(excl.BarberID, excl.ExcludedDate.Format(domain.DateFormat), excl.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&excl.ID, &createdAt)

	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateExclusion
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	excl.CreatedAt = createdAt.Time

	return excl, nil
}

// Delete удаляет исключение по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("barber_exclusions").
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
		return ErrExclusionNotFound
	}

	return nil
}

// ListByBarber возвращает все исключения барбера, ближайшие даты первыми
func (r *Repository) ListByBarber(ctx context.Context, barberID int64) ([]*domain.Exclusion, error) {
	query, args, err := psqlbuilder.Select(exclusionColumns...).
		From("barber_exclusions").
		Where(squirrel.Eq{"barber_id": barberID}).
		OrderBy("excluded_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBarber - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBarber - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	exclusions := make([]*domain.Exclusion, 0)
	for rows.Next() {
		var excl domain.Exclusion
		var createdAt sql.NullTime

		err := rows.Scan(
			&excl.ID,
			&excl.BarberID,
			&excl.ExcludedDate,
			&excl.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBarber - scan row: %v", ErrScanRow, err)
		}

		excl.CreatedAt = createdAt.Time
		exclusions = append(exclusions, &excl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBarber - rows error: %v", ErrScanRow, err)
	}

	return exclusions, nil
}

// Exists проверяет, исключена ли дата для барбера.
// Дата сравнивается строкой YYYY-MM-DD, без участия часовых поясов.
func (r *Repository) Exists(ctx context.Context, barberID int64, date string) (bool, error) {
	query, args, err := psqlbuilder.Select("1").
		From("barber_exclusions").
		Where(squirrel.Eq{"barber_id": barberID, "excluded_date": date}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}
