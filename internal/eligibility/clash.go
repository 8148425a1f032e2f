package eligibility

import (
	"visitgate/internal/eligibility/models"
)

// appointmentEventType is the scheduled-event type for appointments; other
// event types never block a visit.
const appointmentEventType = "APP"

// ClashDetector removes sessions that collide with higher-priority
// appointments such as medical or legal visits.
type ClashDetector struct {
	prioritySubTypes map[string]struct{}
}

// NewClashDetector builds a detector for the given appointment sub-types.
func NewClashDetector(prioritySubTypes []string) ClashDetector {
	return ClashDetector{prioritySubTypes: toSet(prioritySubTypes)}
}

// Qualifies reports whether event can block a session.
func (d ClashDetector) Qualifies(event models.ScheduledEvent) bool {
	if event.EventType != appointmentEventType {
		return false
	}
	_, ok := d.prioritySubTypes[event.EventSubType]
	return ok
}

// Clashes reports whether event overlaps session. An event without a start or
// end time blocks the whole day; otherwise the overlap is strict, so an event
// ending exactly when the session starts does not clash.
func Clashes(session models.AvailableVisitSession, event models.ScheduledEvent) bool {
	if !models.Day(session.SessionDate).Equal(models.Day(event.Date)) {
		return false
	}
	if event.Start == nil || event.End == nil {
		return true
	}
	return *event.Start < session.TimeSlot.End && *event.End > session.TimeSlot.Start
}

// Filter returns the sessions that clash with no qualifying event.
func (d ClashDetector) Filter(sessions []models.AvailableVisitSession, events []models.ScheduledEvent) []models.AvailableVisitSession {
	qualifying := make([]models.ScheduledEvent, 0, len(events))
	for _, e := range events {
		if d.Qualifies(e) {
			qualifying = append(qualifying, e)
		}
	}
	if len(qualifying) == 0 {
		return sessions
	}

	kept := sessions[:0:0]
	for _, s := range sessions {
		if !clashesAny(s, qualifying) {
			kept = append(kept, s)
		}
	}
	return kept
}

func clashesAny(session models.AvailableVisitSession, events []models.ScheduledEvent) bool {
	for _, e := range events {
		if Clashes(session, e) {
			return true
		}
	}
	return false
}
