package adapters

import (
	"context"
	"fmt"

	"visitgate/internal/downstream"
	"visitgate/internal/downstream/scheduler"
	"visitgate/internal/eligibility/models"
	"visitgate/internal/eligibility/ports"
)

// SchedulerAdapter reads prisons and candidate sessions from the visit
// scheduler.
type SchedulerAdapter struct {
	client *scheduler.Client
}

var _ ports.SessionsPort = (*SchedulerAdapter)(nil)

func NewSchedulerAdapter(client *scheduler.Client) *SchedulerAdapter {
	return &SchedulerAdapter{client: client}
}

// GetPrison returns the booking policy for prisonCode. Unknown prisons
// surface as the scheduler's 404.
func (a *SchedulerAdapter) GetPrison(ctx context.Context, prisonCode string) (*models.PrisonPolicy, error) {
	dto, err := a.client.GetPrison(ctx, prisonCode)
	if err != nil {
		return nil, downstream.ToDomainError(err)
	}
	return &models.PrisonPolicy{
		PrisonCode:          dto.Code,
		Active:              dto.Active,
		PolicyNoticeDaysMin: dto.PolicyNoticeDaysMin,
		PolicyNoticeDaysMax: dto.PolicyNoticeDaysMax,
	}, nil
}

func (a *SchedulerAdapter) GetAvailableSessions(ctx context.Context, q models.SessionQuery) ([]models.AvailableVisitSession, error) {
	dtos, err := a.client.GetAvailableSessions(ctx, scheduler.SessionsParams{
		PrisonCode:                   q.PrisonCode,
		PrisonerID:                   q.PrisonerID,
		SessionRestriction:           string(q.SessionRestriction),
		FromDate:                     formatDate(q.Window.From),
		ToDate:                       formatDate(q.Window.To),
		UserType:                     string(q.UserType),
		ExcludedApplicationReference: q.ExcludedApplicationReference,
	})
	if err != nil {
		return nil, downstream.ToDomainError(err)
	}

	sessions := make([]models.AvailableVisitSession, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toSession(dto, q.SessionRestriction)
		if err != nil {
			return nil, badData("scheduler", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

func toSession(dto scheduler.VisitSessionDto, requested models.SessionRestriction) (models.AvailableVisitSession, error) {
	date, err := parseDate(dto.SessionDate)
	if err != nil {
		return models.AvailableVisitSession{}, fmt.Errorf("session %s: %w", dto.SessionTemplateReference, err)
	}
	start, err := models.ParseClock(dto.SessionTimeSlot.StartTime)
	if err != nil {
		return models.AvailableVisitSession{}, fmt.Errorf("session %s: %w", dto.SessionTemplateReference, err)
	}
	end, err := models.ParseClock(dto.SessionTimeSlot.EndTime)
	if err != nil {
		return models.AvailableVisitSession{}, fmt.Errorf("session %s: %w", dto.SessionTemplateReference, err)
	}

	restriction := requested
	if dto.SessionRestriction != "" {
		if restriction, err = models.ParseSessionRestriction(dto.SessionRestriction); err != nil {
			return models.AvailableVisitSession{}, err
		}
	}
	return models.AvailableVisitSession{
		SessionDate:              date,
		SessionTemplateReference: dto.SessionTemplateReference,
		TimeSlot:                 models.TimeSlot{Start: start, End: end},
		SessionRestriction:       restriction,
	}, nil
}
