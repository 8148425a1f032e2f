package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"visitgate/internal/eligibility/models"
)

// PrisonPort resolves the booking policy of a prison.
type PrisonPort interface {
	GetPrison(ctx context.Context, prisonCode string) (*models.PrisonPolicy, error)
}

// SessionsPort fetches raw candidate sessions from the visit scheduler.
type SessionsPort interface {
	GetAvailableSessions(ctx context.Context, query models.SessionQuery) ([]models.AvailableVisitSession, error)
}

// PrisonerRestrictionsPort exposes the prisoner's restrictions as two named
// operations. Both read the same upstream record but each caller owns its own
// failure policy: review computation fails open, session-type resolution
// follows the configured session-type fallback.
type PrisonerRestrictionsPort interface {
	GetPrisonerRestrictionsForReview(ctx context.Context, prisonerID string) ([]models.PrisonerRestriction, error)
	GetPrisonerRestrictionsForSessionType(ctx context.Context, prisonerID string) ([]models.PrisonerRestriction, error)
}

// AlertsPort fetches the prisoner's alerts.
type AlertsPort interface {
	GetPrisonerAlerts(ctx context.Context, prisonerID string) ([]models.PrisonerAlert, error)
}

// VisitorsPort queries the prisoner contact registry about the visitor set.
type VisitorsPort interface {
	// GetVisitorBannedWindow returns the part of window in which none of the
	// visitors is banned, or nil when no date in window is bookable.
	GetVisitorBannedWindow(ctx context.Context, prisonerID string, visitorIDs []int64, window models.DateRange) (*models.DateRange, error)
	GetVisitorRestrictionWindows(ctx context.Context, prisonerID string, visitorIDs []int64, kinds []string, window models.DateRange) ([]models.DateRange, error)
	DoVisitorsHaveClosedRestriction(ctx context.Context, prisonerID string, visitorIDs []int64) (bool, error)
}

// ScheduledEventsPort fetches the prisoner's appointments.
type ScheduledEventsPort interface {
	GetScheduledEvents(ctx context.Context, prisonerID string, fromDate, toDate time.Time) ([]models.ScheduledEvent, error)
}

// BankHolidaysPort lists public holidays falling inside window.
type BankHolidaysPort interface {
	GetBankHolidays(ctx context.Context, window models.DateRange) ([]models.BankHoliday, error)
}
