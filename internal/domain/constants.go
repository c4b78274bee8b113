package domain

// TimeSlots фиксированная сетка слотов на день.
// Одинакова для всех барберов и всех дат, не зависит от длительности услуги.
var TimeSlots = []string{
	"10:00", "11:00", "12:00", "13:00", "14:00",
	"15:00", "16:00", "17:00", "18:00", "19:00", "20:00",
}

// Business validation constants
const (
	MaxCustomerNameLength  = 100
	MaxCustomerPhoneLength = 20
	MinCustomerPhoneLength = 6
	MaxStyleNotesLength    = 500
	MaxReasonLength        = 200
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	SlotFormat = "15:04"      // HH:MM
)

// IsValidTimeSlot reports whether the label belongs to the fixed slot grid
func IsValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
