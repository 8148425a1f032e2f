package eligibility

import (
	"time"

	"visitgate/internal/eligibility/models"
)

// HolidaySet is a lookup of public holiday dates.
type HolidaySet map[time.Time]struct{}

// NewHolidaySet indexes holidays by calendar day.
func NewHolidaySet(holidays []models.BankHoliday) HolidaySet {
	set := make(HolidaySet, len(holidays))
	for _, h := range holidays {
		set[models.Day(h.Date)] = struct{}{}
	}
	return set
}

// Contains reports whether day is a public holiday.
func (s HolidaySet) Contains(day time.Time) bool {
	_, ok := s[models.Day(day)]
	return ok
}

// IsBookableDay reports whether day is a weekday that is not a public holiday.
func IsBookableDay(day time.Time, holidays HolidaySet) bool {
	switch day.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return !holidays.Contains(day)
}

// NextBookableDate advances date one day at a time until it lands on a
// bookable day. A date that is already bookable is returned unchanged.
func NextBookableDate(date time.Time, holidays HolidaySet) time.Time {
	day := models.Day(date)
	for !IsBookableDay(day, holidays) {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

// DropBeforeCutoff removes sessions dated before cutoff. Sessions are never
// moved onto a later day.
func DropBeforeCutoff(sessions []models.AvailableVisitSession, cutoff time.Time) []models.AvailableVisitSession {
	cutoff = models.Day(cutoff)
	kept := sessions[:0:0]
	for _, s := range sessions {
		if models.Day(s.SessionDate).Before(cutoff) {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}
