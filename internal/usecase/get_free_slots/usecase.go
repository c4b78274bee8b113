package get_free_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/catalog"
)

// UseCase use case получения свободных слотов для пары (барбер, дата).
// Результат — снимок журнала на момент вызова, не резервация.
type UseCase struct {
	bookingRepo   BookingRepository
	exclusionRepo ExclusionRepository
	catalogRepo   CatalogRepository
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
		logger:        logger,
	}
}

// Execute выполняет use case получения свободных слотов.
// При недоступности хранилища возвращает деградированный ответ
// (все слоты заняты, Degraded=true) вместо жёсткой ошибки: вызывающая
// сторона блокирует выбор слота, но никогда не получает ложное "свободно".
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetFreeSlots: barber=%d, date=%s", req.BarberID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetFreeSlots: validation failed: %v", err)
		return nil, err
	}

	dateStr := req.Date.Format(domain.DateFormat)

	// 2. Проверяем существование барбера
	if _, err := uc.catalogRepo.GetBarberByID(ctx, req.BarberID); err != nil {
		if errors.Is(err, catalogRepo.ErrBarberNotFound) {
			uc.logger.Warn("GetFreeSlots: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetFreeSlots: failed to get barber id=%d, degrading: %v", req.BarberID, err)
		return uc.degradedResponse(req), nil
	}

	// 3. Исключённая дата закрывает запись целиком, слотовый уровень не смотрим
	excluded, err := uc.exclusionRepo.Exists(ctx, req.BarberID, dateStr)
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to check exclusion, degrading: %v", err)
		return uc.degradedResponse(req), nil
	}

	if excluded {
		uc.logger.Info("GetFreeSlots: date %s is excluded for barber=%d", dateStr, req.BarberID)
		return &Response{
			BarberID:     req.BarberID,
			Date:         req.Date,
			DateExcluded: true,
			Slots:        allTakenSlots(),
		}, nil
	}

	// 4. Снимаем занятые слоты из журнала
	taken, err := uc.bookingRepo.ListTakenSlots(ctx, req.BarberID, dateStr)
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to list taken slots, degrading: %v", err)
		return uc.degradedResponse(req), nil
	}

	slots := buildSlots(taken)

	uc.logger.Info("GetFreeSlots: barber=%d, date=%s, free=%d/%d",
		req.BarberID, dateStr, len(domain.FreeSlots(slots)), len(slots))

	return &Response{
		BarberID: req.BarberID,
		Date:     req.Date,
		Slots:    slots,
	}, nil
}

func (uc *UseCase) degradedResponse(req *Request) *Response {
	return &Response{
		BarberID: req.BarberID,
		Date:     req.Date,
		Degraded: true,
		Slots:    allTakenSlots(),
	}
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
