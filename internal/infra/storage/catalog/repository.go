package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	"github.com/m04kA/Barbershop-BookingService/pkg/psqlbuilder"
)

var (
	barberColumns = []string{
		"id",
		"name",
		"specialty",
		"image",
		"experience_years",
		"rating",
		"created_at",
		"updated_at",
	}

	serviceColumns = []string{
		"id",
		"name",
		"price",
		"duration_minutes",
		"description",
		"created_at",
		"updated_at",
	}
)

// Repository репозиторий справочника барберов и услуг.
// Данные read-mostly: ядро бронирования их только читает,
// изменения приходят из административного канала.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочника
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// --- Barbers ---

// ListBarbers возвращает всех барберов, отсортированных по рейтингу (лучшие первыми)
func (r *Repository) ListBarbers(ctx context.Context) ([]*domain.Barber, error) {
	query, args, err := psqlbuilder.Select(barberColumns...).
		From("barbers").
		OrderBy("rating DESC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBarbers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBarbers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	barbers := make([]*domain.Barber, 0)
	for rows.Next() {
		barber, err := scanBarber(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBarbers - scan row: %v", ErrScanRow, err)
		}
		barbers = append(barbers, barber)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBarbers - rows error: %v", ErrScanRow, err)
	}

	return barbers, nil
}

// GetBarberByID получает барбера по ID
func (r *Repository) GetBarberByID(ctx context.Context, id int64) (*domain.Barber, error) {
	query, args, err := psqlbuilder.Select(barberColumns...).
		From("barbers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBarberByID - build select query: %v", ErrBuildQuery, err)
	}

	barber, err := scanBarber(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBarberByID - scan barber: %v", ErrScanRow, err)
	}

	return barber, nil
}

// CreateBarber создает барбера
func (r *Repository) CreateBarber(ctx context.Context, barber *domain.Barber) (*domain.Barber, error) {
	query, args, err := psqlbuilder.Insert("barbers").
		Columns("name", "specialty", "image", "experience_years", "rating").
		Values(barber.Name, barber.Specialty, barber.Image, barber.ExperienceYears, barber.Rating).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateBarber - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&barber.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBarber - execute insert: %v", ErrExecQuery, err)
	}

	barber.CreatedAt = createdAt.Time
	barber.UpdatedAt = updatedAt.Time

	return barber, nil
}

// UpdateBarber обновляет данные барбера
func (r *Repository) UpdateBarber(ctx context.Context, id int64, barber *domain.Barber) (*domain.Barber, error) {
	query, args, err := psqlbuilder.Update("barbers").
		Set("name", barber.Name).
		Set("specialty", barber.Specialty).
		Set("image", barber.Image).
		Set("experience_years", barber.ExperienceYears).
		Set("rating", barber.Rating).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateBarber - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateBarber - execute update: %v", ErrExecQuery, err)
	}

	barber.ID = id
	barber.CreatedAt = createdAt.Time
	barber.UpdatedAt = updatedAt.Time

	return barber, nil
}

// DeleteBarber удаляет барбера.
// Существующие бронирования не каскадируются: журнал хранит
// денормализованное имя барбера и остается читаемым.
func (r *Repository) DeleteBarber(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "barbers", id, ErrBarberNotFound, "DeleteBarber")
}

// --- Services ---

// ListServices возвращает все услуги, отсортированные по цене (дешевые первыми)
func (r *Repository) ListServices(ctx context.Context) ([]*domain.ServiceOffering, error) {
	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		OrderBy("price ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.ServiceOffering, 0)
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetServiceByID получает услугу по ID
func (r *Repository) GetServiceByID(ctx context.Context, id int64) (*domain.ServiceOffering, error) {
	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - build select query: %v", ErrBuildQuery, err)
	}

	service, err := scanService(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - scan service: %v", ErrScanRow, err)
	}

	return service, nil
}

// CreateService создает услугу
func (r *Repository) CreateService(ctx context.Context, service *domain.ServiceOffering) (*domain.ServiceOffering, error) {
	query, args, err := psqlbuilder.Insert("services").
		Columns("name", "price", "duration_minutes", "description").
		Values(service.Name, service.Price, service.DurationMinutes, service.Description).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateService - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&service.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateService - execute insert: %v", ErrExecQuery, err)
	}

	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time

	return service, nil
}

// UpdateService обновляет данные услуги
func (r *Repository) UpdateService(ctx context.Context, id int64, service *domain.ServiceOffering) (*domain.ServiceOffering, error) {
	query, args, err := psqlbuilder.Update("services").
		Set("name", service.Name).
		Set("price", service.Price).
		Set("duration_minutes", service.DurationMinutes).
		Set("description", service.Description).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateService - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateService - execute update: %v", ErrExecQuery, err)
	}

	service.ID = id
	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time

	return service, nil
}

// DeleteService удаляет услугу
func (r *Repository) DeleteService(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "services", id, ErrServiceNotFound, "DeleteService")
}

// --- Helpers ---

func (r *Repository) deleteByID(ctx context.Context, table string, id int64, notFound error, method string) error {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: %s - build delete query: %v", ErrBuildQuery, method, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute delete: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBarber(row rowScanner) (*domain.Barber, error) {
	var barber domain.Barber
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&barber.ID,
		&barber.Name,
		&barber.Specialty,
		&barber.Image,
		&barber.ExperienceYears,
		&barber.Rating,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	barber.CreatedAt = createdAt.Time
	barber.UpdatedAt = updatedAt.Time
	return &barber, nil
}

func scanService(row rowScanner) (*domain.ServiceOffering, error) {
	var service domain.ServiceOffering
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&service.ID,
		&service.Name,
		&service.Price,
		&service.DurationMinutes,
		&service.Description,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time
	return &service, nil
}
