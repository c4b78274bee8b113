package exclusions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/catalog"
	exclusionRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/exclusion"
	"github.com/m04kA/Barbershop-BookingService/internal/service/exclusions/models"
)

// Service сервис для работы с исключёнными датами барберов
type Service struct {
	exclusionRepo ExclusionRepository
	catalogRepo   CatalogRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса исключений
func NewService(exclusionRepo ExclusionRepository, catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		exclusionRepo: exclusionRepo,
		catalogRepo:   catalogRepo,
		logger:        logger,
	}
}

// Add исключает дату у барбера: день целиком выпадает из бронирования.
// Повторное исключение той же даты возвращает ErrDuplicateExclusion.
func (s *Service) Add(ctx context.Context, req *models.AddExclusionRequest) (*models.ExclusionResponse, error) {
	s.logger.Info("Add: excluding date=%s for barber=%d", req.Date, req.BarberID)

	if req.BarberID <= 0 {
		return nil, fmt.Errorf("%w: barberId must be positive", ErrInvalidInput)
	}
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		s.logger.Warn("Add: invalid date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: date must be in format %s", ErrInvalidInput, domain.DateFormat)
	}
	if len(req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	// Барбер должен существовать
	if _, err := s.catalogRepo.GetBarberByID(ctx, req.BarberID); err != nil {
		if errors.Is(err, catalogRepo.ErrBarberNotFound) {
			s.logger.Warn("Add: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("Add: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	created, err := s.exclusionRepo.Create(ctx, &domain.Exclusion{
		BarberID:     req.BarberID,
		ExcludedDate: date,
		Reason:       req.Reason,
	})
	if err != nil {
		if errors.Is(err, exclusionRepo.ErrDuplicateExclusion) {
			s.logger.Warn("Add: date=%s already excluded for barber=%d", req.Date, req.BarberID)
			return nil, ErrDuplicateExclusion
		}
		s.logger.Error("Add: repository error: %v", err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Add: successfully excluded date=%s for barber=%d, id=%d", req.Date, req.BarberID, created.ID)
	return models.FromDomainExclusion(created), nil
}

// Remove снимает исключение по ID
func (s *Service) Remove(ctx context.Context, id int64) error {
	s.logger.Info("Remove: removing exclusion id=%d", id)

	if err := s.exclusionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, exclusionRepo.ErrExclusionNotFound) {
			s.logger.Warn("Remove: exclusion id=%d not found", id)
			return ErrExclusionNotFound
		}
		s.logger.Error("Remove: repository error for exclusion id=%d: %v", id, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Remove: successfully removed exclusion id=%d", id)
	return nil
}

// ListByBarber возвращает исключения барбера по возрастанию даты
func (s *Service) ListByBarber(ctx context.Context, barberID int64) (*models.ExclusionListResponse, error) {
	exclusions, err := s.list(ctx, barberID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainExclusionList(exclusions), nil
}

// ExcludedDates возвращает публичный список исключённых дат барбера
func (s *Service) ExcludedDates(ctx context.Context, barberID int64) (*models.ExcludedDatesResponse, error) {
	exclusions, err := s.list(ctx, barberID)
	if err != nil {
		return nil, err
	}
	return models.ToExcludedDates(barberID, exclusions), nil
}

func (s *Service) list(ctx context.Context, barberID int64) ([]*domain.Exclusion, error) {
	if _, err := s.catalogRepo.GetBarberByID(ctx, barberID); err != nil {
		if errors.Is(err, catalogRepo.ErrBarberNotFound) {
			s.logger.Warn("list: barber id=%d not found", barberID)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("list: failed to get barber id=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: list - repository error: %v", ErrInternal, err)
	}

	exclusions, err := s.exclusionRepo.ListByBarber(ctx, barberID)
	if err != nil {
		s.logger.Error("list: repository error for barber=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: list - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("list: successfully fetched %d exclusions for barber=%d", len(exclusions), barberID)
	return exclusions, nil
}
