package adapters

import (
	"context"
	"time"

	"visitgate/internal/downstream"
	"visitgate/internal/downstream/whereabouts"
	"visitgate/internal/eligibility/models"
	"visitgate/internal/eligibility/ports"
)

type ScheduledEventsAdapter struct {
	client *whereabouts.Client
}

var _ ports.ScheduledEventsPort = (*ScheduledEventsAdapter)(nil)

func NewScheduledEventsAdapter(client *whereabouts.Client) *ScheduledEventsAdapter {
	return &ScheduledEventsAdapter{client: client}
}

// GetScheduledEvents returns the prisoner's events. Failures keep the
// upstream status.
func (a *ScheduledEventsAdapter) GetScheduledEvents(ctx context.Context, prisonerID string, fromDate, toDate time.Time) ([]models.ScheduledEvent, error) {
	dtos, err := a.client.GetScheduledEvents(ctx, prisonerID, formatDate(fromDate), formatDate(toDate))
	if err != nil {
		return nil, downstream.ToDomainError(err)
	}

	out := make([]models.ScheduledEvent, 0, len(dtos))
	for _, dto := range dtos {
		date, err := parseDate(dto.EventDate)
		if err != nil {
			return nil, badData("whereabouts", err)
		}
		start, err := parseOptionalClock(dto.StartTime)
		if err != nil {
			return nil, badData("whereabouts", err)
		}
		end, err := parseOptionalClock(dto.EndTime)
		if err != nil {
			return nil, badData("whereabouts", err)
		}
		out = append(out, models.ScheduledEvent{
			EventType:    dto.EventType,
			EventSubType: dto.EventSubType,
			Date:         date,
			Start:        start,
			End:          end,
		})
	}
	return out, nil
}
