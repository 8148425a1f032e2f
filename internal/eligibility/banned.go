package eligibility

import (
	"context"
	"fmt"

	"visitgate/internal/eligibility/models"
	"visitgate/internal/eligibility/ports"
)

// BanModerator narrows the policy window to the dates on which none of the
// visitors is banned.
type BanModerator struct {
	visitors ports.VisitorsPort
}

func NewBanModerator(visitors ports.VisitorsPort) *BanModerator {
	return &BanModerator{visitors: visitors}
}

// Moderate returns the bookable part of window, never wider than window. A
// nil range with a nil error means no date in window is bookable. Without visitors there is nothing to
// moderate and window is returned as is.
func (m *BanModerator) Moderate(ctx context.Context, prisonerID string, visitorIDs []int64, window models.DateRange) (*models.DateRange, error) {
	if len(visitorIDs) == 0 {
		return &window, nil
	}
	moderated, err := m.visitors.GetVisitorBannedWindow(ctx, prisonerID, visitorIDs, window)
	if err != nil {
		return nil, fmt.Errorf("moderate window for banned visitors: %w", err)
	}
	if moderated == nil {
		return nil, nil
	}
	narrowed := models.NewDateRange(moderated.From, moderated.To)
	if !narrowed.Overlaps(window) {
		return nil, nil
	}
	// Bans only ever remove dates; notice policy still bounds the result.
	if narrowed.From.Before(window.From) {
		narrowed.From = window.From
	}
	if narrowed.To.After(window.To) {
		narrowed.To = window.To
	}
	return &narrowed, nil
}
