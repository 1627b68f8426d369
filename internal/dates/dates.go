// Package dates holds the date helpers shared by the booking form and the
// store: night counting, form defaults and display formatting.
package dates

import (
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
)

// Nights returns the whole-day difference between check-in and check-out.
// The result can be zero or negative for an invalid range; callers must
// validate before treating it as billable.
func Nights(checkIn, checkOut domain.Date) int {
	return checkIn.DaysUntil(checkOut)
}

// Today returns the current calendar date, used as the default check-in.
func Today() domain.Date {
	return domain.DateOf(time.Now())
}

// Tomorrow returns the default check-out date.
func Tomorrow() domain.Date {
	return Today().AddDays(1)
}

// Format renders a date in the long display form used by booking summaries,
// e.g. "Saturday, June 1, 2024".
func Format(d domain.Date) string {
	return d.Time().Format("Monday, January 2, 2006")
}
