package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/catalog"
)

// UseCase use case создания бронирования.
//
// Доступность слота здесь повторно НЕ проверяется: единственный арбитр
// конкурентных коммитов — уникальный индекс (barber_id, booking_date, time_slot)
// на стороне хранилища. Из двух одновременных коммитов на один ключ ровно один
// получает строку журнала, второй — ErrSlotNotAvailable; окна между проверкой
// и вставкой не существует.
type UseCase struct {
	bookingRepo   BookingRepository
	exclusionRepo ExclusionRepository
	catalogRepo   CatalogRepository
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	exclusionRepo ExclusionRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		exclusionRepo: exclusionRepo,
		catalogRepo:   catalogRepo,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования.
// На успех — ровно одна строка журнала; на любой ошибке — ни одной.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: barber=%d, service=%d, date=%s, slot=%s",
		req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat), req.TimeSlot)

	// 1. Валидация входных данных — до любого обращения к хранилищу
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не в прошлом
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем барбера
	barber, err := uc.catalogRepo.GetBarberByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrBarberNotFound) {
			uc.logger.Warn("CreateBooking: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateBooking: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrStorageUnavailable, err)
	}

	// 4. Получаем услугу
	service, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrStorageUnavailable, err)
	}

	dateStr := req.Date.Format(domain.DateFormat)

	// 5. Исключённая дата блокирует коммит независимо от состояния слотов
	excluded, err := uc.exclusionRepo.Exists(ctx, req.BarberID, dateStr)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to check exclusion: %v", err)
		return nil, fmt.Errorf("%w: failed to check exclusion: %v", ErrStorageUnavailable, err)
	}
	if excluded {
		uc.logger.Warn("CreateBooking: date %s is excluded for barber=%d", dateStr, req.BarberID)
		return nil, ErrDateExcluded
	}

	// 6. Вставляем бронирование; конфликт разрешает уникальный индекс
	booking := &domain.Booking{
		BarberID:      req.BarberID,
		ServiceID:     req.ServiceID,
		BookingDate:   req.Date,
		TimeSlot:      req.TimeSlot,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		StyleNotes:    req.StyleNotes,
		// Денормализация для истории
		BarberName:   barber.Name,
		ServiceName:  service.Name,
		ServicePrice: service.Price,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateBooking: slot %s on %s taken for barber=%d", req.TimeSlot, dateStr, req.BarberID)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrStorageUnavailable, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", created.ID)

	return &Response{
		ID:            created.ID,
		BarberID:      created.BarberID,
		ServiceID:     created.ServiceID,
		BookingDate:   created.BookingDate,
		TimeSlot:      created.TimeSlot,
		CustomerName:  created.CustomerName,
		CustomerPhone: created.CustomerPhone,
		StyleNotes:    created.StyleNotes,
		BarberName:    created.BarberName,
		ServiceName:   created.ServiceName,
		ServicePrice:  created.ServicePrice,
		CreatedAt:     created.CreatedAt,
	}, nil
}
