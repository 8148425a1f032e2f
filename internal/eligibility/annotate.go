package eligibility

import (
	"cmp"
	"slices"
	"time"

	"visitgate/internal/eligibility/models"
)

// Annotate sets SessionForReview on each session whose date falls inside any
// review interval, bounds included. It returns new values and leaves the input
// untouched.
func Annotate(sessions []models.AvailableVisitSession, reviewIntervals []models.DateRange) []models.AvailableVisitSession {
	out := make([]models.AvailableVisitSession, len(sessions))
	for i, s := range sessions {
		s.SessionForReview = inAny(s.SessionDate, reviewIntervals)
		out[i] = s
	}
	return out
}

func inAny(day time.Time, intervals []models.DateRange) bool {
	for _, r := range intervals {
		if r.Contains(day) {
			return true
		}
	}
	return false
}

// SortSessions orders sessions by date, then session template reference,
// then start time.
func SortSessions(sessions []models.AvailableVisitSession) {
	slices.SortStableFunc(sessions, func(a, b models.AvailableVisitSession) int {
		if c := a.SessionDate.Compare(b.SessionDate); c != 0 {
			return c
		}
		if c := cmp.Compare(a.SessionTemplateReference, b.SessionTemplateReference); c != 0 {
			return c
		}
		return cmp.Compare(a.TimeSlot.Start, b.TimeSlot.Start)
	})
}
