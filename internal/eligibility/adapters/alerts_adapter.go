package adapters

import (
	"context"

	"visitgate/internal/downstream"
	"visitgate/internal/downstream/alerts"
	"visitgate/internal/eligibility/models"
	"visitgate/internal/eligibility/ports"
)

type AlertsAdapter struct {
	client *alerts.Client
}

var _ ports.AlertsPort = (*AlertsAdapter)(nil)

func NewAlertsAdapter(client *alerts.Client) *AlertsAdapter {
	return &AlertsAdapter{client: client}
}

// GetPrisonerAlerts returns active alerts. Inactive entries are dropped even
// if the service returns them.
func (a *AlertsAdapter) GetPrisonerAlerts(ctx context.Context, prisonerID string) ([]models.PrisonerAlert, error) {
	dtos, err := a.client.GetActiveAlerts(ctx, prisonerID)
	if err != nil {
		return nil, downstream.ToDomainError(err)
	}

	out := make([]models.PrisonerAlert, 0, len(dtos))
	for _, dto := range dtos {
		if !dto.IsActive {
			continue
		}
		from, err := parseDate(dto.ActiveFrom)
		if err != nil {
			return nil, badData("alerts", err)
		}
		to, err := parseOptionalDate(dto.ActiveTo)
		if err != nil {
			return nil, badData("alerts", err)
		}
		out = append(out, models.PrisonerAlert{Code: dto.AlertCode.Code, ActiveFrom: from, ActiveTo: to})
	}
	return out, nil
}
