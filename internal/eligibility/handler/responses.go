package handler

import (
	"visitgate/internal/eligibility/models"
)

// SessionTimeSlotResponse holds HH:MM times.
type SessionTimeSlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// AvailableSessionResponse is one element of GET /visit-sessions/available.
type AvailableSessionResponse struct {
	SessionDate              string                  `json:"sessionDate"`
	SessionTemplateReference string                  `json:"sessionTemplateReference"`
	SessionTimeSlot          SessionTimeSlotResponse `json:"sessionTimeSlot"`
	SessionRestriction       string                  `json:"sessionRestriction"`
	SessionForReview         bool                    `json:"sessionForReview"`
}

// FromSessions converts engine results, always yielding a non-nil slice so an
// empty result renders as [].
func FromSessions(sessions []models.AvailableVisitSession) []AvailableSessionResponse {
	out := make([]AvailableSessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, AvailableSessionResponse{
			SessionDate:              s.SessionDate.Format(models.DateLayout),
			SessionTemplateReference: s.SessionTemplateReference,
			SessionTimeSlot: SessionTimeSlotResponse{
				StartTime: s.TimeSlot.Start.String(),
				EndTime:   s.TimeSlot.End.String(),
			},
			SessionRestriction: string(s.SessionRestriction),
			SessionForReview:   s.SessionForReview,
		})
	}
	return out
}
