package get_free_slots

import "github.com/m04kA/Barbershop-BookingService/internal/domain"

// buildSlots строит полную сетку слотов, помечая занятые.
// Слот занят тогда и только тогда, когда его метка встречается среди taken;
// ширина слота фиксированная, пересечения интервалов не вычисляются.
func buildSlots(taken []string) []domain.Slot {
	takenSet := make(map[string]struct{}, len(taken))
	for _, t := range taken {
		takenSet[t] = struct{}{}
	}

	slots := make([]domain.Slot, len(domain.TimeSlots))
	for i, label := range domain.TimeSlots {
		_, isTaken := takenSet[label]
		slots[i] = domain.Slot{
			StartTime: label,
			Available: !isTaken,
		}
	}

	return slots
}

// allTakenSlots возвращает сетку, в которой запись невозможна ни в один слот.
// Используется для исключённых дат и деградированного режима:
// при недоступности журнала слот никогда не считается свободным.
func allTakenSlots() []domain.Slot {
	slots := make([]domain.Slot, len(domain.TimeSlots))
	for i, label := range domain.TimeSlots {
		slots[i] = domain.Slot{StartTime: label, Available: false}
	}
	return slots
}
