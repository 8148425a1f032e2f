package adapters

import (
	"context"

	"visitgate/internal/downstream"
	"visitgate/internal/downstream/prisonapi"
	"visitgate/internal/eligibility/models"
	"visitgate/internal/eligibility/ports"
)

// PrisonerRestrictionsAdapter reads offender restrictions from the prison API.
// Both port operations hit the same endpoint; the engine applies a different
// failure policy to each.
type PrisonerRestrictionsAdapter struct {
	client *prisonapi.Client
}

var _ ports.PrisonerRestrictionsPort = (*PrisonerRestrictionsAdapter)(nil)

func NewPrisonerRestrictionsAdapter(client *prisonapi.Client) *PrisonerRestrictionsAdapter {
	return &PrisonerRestrictionsAdapter{client: client}
}

// GetPrisonerRestrictionsForReview feeds the review flag, which fails open.
func (a *PrisonerRestrictionsAdapter) GetPrisonerRestrictionsForReview(ctx context.Context, prisonerID string) ([]models.PrisonerRestriction, error) {
	return a.restrictions(ctx, prisonerID)
}

// GetPrisonerRestrictionsForSessionType feeds OPEN/CLOSED resolution, which
// follows the configured session-type fallback.
func (a *PrisonerRestrictionsAdapter) GetPrisonerRestrictionsForSessionType(ctx context.Context, prisonerID string) ([]models.PrisonerRestriction, error) {
	return a.restrictions(ctx, prisonerID)
}

func (a *PrisonerRestrictionsAdapter) restrictions(ctx context.Context, prisonerID string) ([]models.PrisonerRestriction, error) {
	dtos, err := a.client.GetOffenderRestrictions(ctx, prisonerID)
	if err != nil {
		return nil, downstream.ToDomainError(err)
	}

	out := make([]models.PrisonerRestriction, 0, len(dtos))
	for _, dto := range dtos {
		start, err := parseDate(dto.StartDate)
		if err != nil {
			return nil, badData("prison-api", err)
		}
		expiry, err := parseOptionalDate(dto.ExpiryDate)
		if err != nil {
			return nil, badData("prison-api", err)
		}
		out = append(out, models.PrisonerRestriction{Type: dto.RestrictionType, StartDate: start, ExpiryDate: expiry})
	}
	return out, nil
}
