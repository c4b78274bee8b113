package domain

import "time"

// Exclusion represents a full-day blackout for a barber (day off, vacation).
// Важно только существование записи для пары (barber, date); reason информационный.
type Exclusion struct {
	ID           int64
	BarberID     int64
	ExcludedDate time.Time
	Reason       string

	CreatedAt time.Time
}
