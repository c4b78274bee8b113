package domain

// Slot represents one entry of the fixed slot grid for a concrete (barber, date)
type Slot struct {
	StartTime string // метка слота, например "14:00"
	Available bool
}

// FreeSlots returns only the available slot labels, preserving grid order
func FreeSlots(slots []Slot) []string {
	free := make([]string, 0, len(slots))
	for _, s := range slots {
		if s.Available {
			free = append(free, s.StartTime)
		}
	}
	return free
}
