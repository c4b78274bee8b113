package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/Barbershop-BookingService/internal/service/catalog/models"
)

// Service сервис для работы с каталогом: барберы и прайс-лист
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ListBarbers возвращает всех барберов, отсортированных по рейтингу
func (s *Service) ListBarbers(ctx context.Context) (*models.BarberListResponse, error) {
	barbers, err := s.catalogRepo.ListBarbers(ctx)
	if err != nil {
		s.logger.Error("ListBarbers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBarbers - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBarbers: successfully fetched %d barbers", len(barbers))
	return models.FromDomainBarberList(barbers), nil
}

// GetBarber получает барбера по ID
func (s *Service) GetBarber(ctx context.Context, id int64) (*models.BarberResponse, error) {
	barber, err := s.catalogRepo.GetBarberByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrBarberNotFound) {
			s.logger.Warn("GetBarber: barber id=%d not found", id)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("GetBarber: repository error for barber id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetBarber - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBarber(barber), nil
}

// CreateBarber создает нового барбера
func (s *Service) CreateBarber(ctx context.Context, req *models.CreateBarberRequest) (*models.BarberResponse, error) {
	s.logger.Info("CreateBarber: creating barber name=%s", req.Name)

	barber := req.ToDomain()
	if err := validateBarber(barber); err != nil {
		s.logger.Warn("CreateBarber: validation failed: %v", err)
		return nil, err
	}

	created, err := s.catalogRepo.CreateBarber(ctx, barber)
	if err != nil {
		s.logger.Error("CreateBarber: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBarber - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBarber: successfully created barber id=%d", created.ID)
	return models.FromDomainBarber(created), nil
}

// UpdateBarber обновляет данные барбера.
// Имя в существующих бронированиях не меняется: журнал хранит
// денормализованную копию на момент создания записи.
func (s *Service) UpdateBarber(ctx context.Context, id int64, req *models.UpdateBarberRequest) (*models.BarberResponse, error) {
	s.logger.Info("UpdateBarber: updating barber id=%d", id)

	barber := req.ToDomain()
	if err := validateBarber(barber); err != nil {
		s.logger.Warn("UpdateBarber: validation failed for barber id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.catalogRepo.UpdateBarber(ctx, id, barber)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrBarberNotFound) {
			s.logger.Warn("UpdateBarber: barber id=%d not found", id)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("UpdateBarber: repository error for barber id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateBarber - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateBarber: successfully updated barber id=%d", id)
	return models.FromDomainBarber(updated), nil
}

// DeleteBarber удаляет барбера.
// Существующие бронирования остаются читаемыми за счёт денормализации.
func (s *Service) DeleteBarber(ctx context.Context, id int64) error {
	s.logger.Info("DeleteBarber: deleting barber id=%d", id)

	if err := s.catalogRepo.DeleteBarber(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrBarberNotFound) {
			s.logger.Warn("DeleteBarber: barber id=%d not found", id)
			return ErrBarberNotFound
		}
		s.logger.Error("DeleteBarber: repository error for barber id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteBarber - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBarber: successfully deleted barber id=%d", id)
	return nil
}

// ListServices возвращает все услуги, отсортированные по цене
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.catalogRepo.ListServices(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: successfully fetched %d services", len(services))
	return models.FromDomainServiceList(services), nil
}

// GetService получает услугу по ID
func (s *Service) GetService(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	service, err := s.catalogRepo.GetServiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("GetService: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetService: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetService - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(service), nil
}

// CreateService создает новую услугу
func (s *Service) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: creating service name=%s", req.Name)

	service := req.ToDomain()
	if err := validateService(service); err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, err
	}

	created, err := s.catalogRepo.CreateService(ctx, service)
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: successfully created service id=%d", created.ID)
	return models.FromDomainService(created), nil
}

// UpdateService обновляет данные услуги
func (s *Service) UpdateService(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("UpdateService: updating service id=%d", id)

	service := req.ToDomain()
	if err := validateService(service); err != nil {
		s.logger.Warn("UpdateService: validation failed for service id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.catalogRepo.UpdateService(ctx, id, service)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("UpdateService: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("UpdateService: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateService: successfully updated service id=%d", id)
	return models.FromDomainService(updated), nil
}

// DeleteService удаляет услугу
func (s *Service) DeleteService(ctx context.Context, id int64) error {
	s.logger.Info("DeleteService: deleting service id=%d", id)

	if err := s.catalogRepo.DeleteService(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("DeleteService: service id=%d not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("DeleteService: repository error for service id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteService: successfully deleted service id=%d", id)
	return nil
}

func validateBarber(b *domain.Barber) error {
	if b.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if b.ExperienceYears < 0 {
		return fmt.Errorf("%w: experienceYears must be non-negative", ErrInvalidInput)
	}
	if b.Rating < 0 || b.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 0 and 5", ErrInvalidInput)
	}
	return nil
}

func validateService(s *domain.ServiceOffering) error {
	if s.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if s.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	if s.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}
	return nil
}
