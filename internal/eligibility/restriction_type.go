package eligibility

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"visitgate/internal/eligibility/models"
	"visitgate/internal/eligibility/ports"
)

// closedRestrictionType marks a prisoner who may only receive closed visits.
const closedRestrictionType = "CLOSED"

// SessionTypeFallback decides what happens when the OPEN/CLOSED lookups fail.
type SessionTypeFallback string

const (
	// FallbackClosed assumes the most restrictive session type.
	FallbackClosed SessionTypeFallback = "closed"
	// FallbackPropagate fails the request with the collaborator's error.
	FallbackPropagate SessionTypeFallback = "propagate"
)

// ParseSessionTypeFallback accepts "closed" or "propagate".
func ParseSessionTypeFallback(s string) (SessionTypeFallback, error) {
	switch SessionTypeFallback(s) {
	case FallbackClosed, FallbackPropagate:
		return SessionTypeFallback(s), nil
	}
	return "", fmt.Errorf("unknown session type fallback %q", s)
}

// SessionTypeResolver derives OPEN or CLOSED for a prisoner and visitor set
// when the caller did not ask for one.
type SessionTypeResolver struct {
	prisoners ports.PrisonerRestrictionsPort
	visitors  ports.VisitorsPort
	fallback  SessionTypeFallback
	logger    *slog.Logger
}

func newSessionTypeResolver(prisoners ports.PrisonerRestrictionsPort, visitors ports.VisitorsPort, fallback SessionTypeFallback, logger *slog.Logger) *SessionTypeResolver {
	if fallback == "" {
		fallback = FallbackClosed
	}
	return &SessionTypeResolver{prisoners: prisoners, visitors: visitors, fallback: fallback, logger: logger}
}

// Resolve returns CLOSED when the prisoner has an active closed restriction
// on today or any visitor has a closed restriction, OPEN otherwise.
func (r *SessionTypeResolver) Resolve(ctx context.Context, prisonerID string, visitorIDs []int64, today time.Time) (models.SessionRestriction, error) {
	restrictions, err := r.prisoners.GetPrisonerRestrictionsForSessionType(ctx, prisonerID)
	if err != nil {
		return r.fail(ctx, prisonerID, "prisoner restrictions", err)
	}
	for _, res := range restrictions {
		if res.Type == closedRestrictionType && activeOn(res, today) {
			return models.SessionRestrictionClosed, nil
		}
	}

	if len(visitorIDs) == 0 {
		return models.SessionRestrictionOpen, nil
	}
	closed, err := r.visitors.DoVisitorsHaveClosedRestriction(ctx, prisonerID, visitorIDs)
	if err != nil {
		return r.fail(ctx, prisonerID, "visitor closed restriction", err)
	}
	if closed {
		return models.SessionRestrictionClosed, nil
	}
	return models.SessionRestrictionOpen, nil
}

func (r *SessionTypeResolver) fail(ctx context.Context, prisonerID, lookup string, err error) (models.SessionRestriction, error) {
	if r.fallback == FallbackPropagate {
		return "", fmt.Errorf("resolve session type from %s: %w", lookup, err)
	}
	if r.logger != nil {
		r.logger.WarnContext(ctx, "session type lookup failed, assuming closed",
			"lookup", lookup,
			"prisoner_id", prisonerID,
			"error", err,
		)
	}
	return models.SessionRestrictionClosed, nil
}

func activeOn(r models.PrisonerRestriction, day time.Time) bool {
	day = models.Day(day)
	if models.Day(r.StartDate).After(day) {
		return false
	}
	return r.ExpiryDate == nil || !models.Day(*r.ExpiryDate).Before(day)
}
