package get_free_slots

import (
	"time"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	BarberID int64     // ID барбера
	Date     time.Time // Дата (без времени)
}

// Response модель ответа со состоянием сетки слотов.
// Слоты идут в порядке фиксированной сетки и покрывают её целиком.
type Response struct {
	BarberID     int64
	Date         time.Time
	DateExcluded bool          // Дата целиком закрыта для записи (выходной барбера)
	Degraded     bool          // Журнал недоступен: все слоты помечены занятыми
	Slots        []domain.Slot // Полная сетка с флагами доступности
}

// FreeSlots возвращает только свободные метки слотов
func (r *Response) FreeSlots() []string {
	return domain.FreeSlots(r.Slots)
}
