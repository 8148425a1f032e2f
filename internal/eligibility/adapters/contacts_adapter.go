package adapters

import (
	"context"

	"visitgate/internal/downstream"
	"visitgate/internal/downstream/contacts"
	"visitgate/internal/eligibility/models"
	"visitgate/internal/eligibility/ports"
)

type ContactsAdapter struct {
	client *contacts.Client
}

var _ ports.VisitorsPort = (*ContactsAdapter)(nil)

func NewContactsAdapter(client *contacts.Client) *ContactsAdapter {
	return &ContactsAdapter{client: client}
}

func (a *ContactsAdapter) GetVisitorBannedWindow(ctx context.Context, prisonerID string, visitorIDs []int64, window models.DateRange) (*models.DateRange, error) {
	dto, err := a.client.GetBannedDateRange(ctx, prisonerID, visitorIDs, formatDate(window.From), formatDate(window.To))
	if err != nil {
		return nil, downstream.ToDomainError(err)
	}
	if dto == nil {
		return nil, nil
	}
	r, err := toDateRange(*dto)
	if err != nil {
		return nil, badData("contacts", err)
	}
	return &r, nil
}

func (a *ContactsAdapter) GetVisitorRestrictionWindows(ctx context.Context, prisonerID string, visitorIDs []int64, kinds []string, window models.DateRange) ([]models.DateRange, error) {
	dtos, err := a.client.GetRestrictionDateRanges(ctx, prisonerID, visitorIDs, kinds, formatDate(window.From), formatDate(window.To))
	if err != nil {
		return nil, downstream.ToDomainError(err)
	}

	out := make([]models.DateRange, 0, len(dtos))
	for _, dto := range dtos {
		r, err := toDateRange(dto)
		if err != nil {
			return nil, badData("contacts", err)
		}
		out = append(out, r)
	}
	return out, nil
}

func (a *ContactsAdapter) DoVisitorsHaveClosedRestriction(ctx context.Context, prisonerID string, visitorIDs []int64) (bool, error) {
	closed, err := a.client.HasClosedRestriction(ctx, prisonerID, visitorIDs)
	if err != nil {
		return false, downstream.ToDomainError(err)
	}
	return closed, nil
}

func toDateRange(dto contacts.DateRangeDto) (models.DateRange, error) {
	from, err := parseDate(dto.FromDate)
	if err != nil {
		return models.DateRange{}, err
	}
	to, err := parseDate(dto.ToDate)
	if err != nil {
		return models.DateRange{}, err
	}
	return models.NewDateRange(from, to), nil
}
