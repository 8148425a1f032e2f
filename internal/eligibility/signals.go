package eligibility

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"visitgate/internal/eligibility/metrics"
	"visitgate/internal/eligibility/models"
	"visitgate/internal/eligibility/ports"
)

const (
	sourcePrisonerRestrictions = "prisoner_restrictions"
	sourceAlerts               = "alerts"
	sourceVisitorRestrictions  = "visitor_restrictions"
	sourceScheduledEvents      = "scheduled_events"
	sourceBankHolidays         = "bank_holidays"
)

// SignalRequest identifies whose review signals to gather.
type SignalRequest struct {
	PrisonerID string
	VisitorIDs []int64
	// Window is the moderated window sessions were fetched for.
	Window models.DateRange
}

// SignalAggregator gathers the review intervals for a request. Every signal
// only ever adds review coverage, so a failed signal contributes nothing and
// never fails the request.
type SignalAggregator struct {
	prisoners ports.PrisonerRestrictionsPort
	alerts    ports.AlertsPort
	visitors  ports.VisitorsPort

	restrictionTypes        map[string]struct{}
	alertCodes              map[string]struct{}
	visitorRestrictionTypes []string

	logger  *slog.Logger
	metrics *metrics.Metrics
}

func newSignalAggregator(
	prisoners ports.PrisonerRestrictionsPort,
	alerts ports.AlertsPort,
	visitors ports.VisitorsPort,
	rules Rules,
	logger *slog.Logger,
	m *metrics.Metrics,
) *SignalAggregator {
	return &SignalAggregator{
		prisoners:               prisoners,
		alerts:                  alerts,
		visitors:                visitors,
		restrictionTypes:        toSet(rules.ReviewRestrictionTypes),
		alertCodes:              toSet(rules.SupportedAlertCodes),
		visitorRestrictionTypes: rules.VisitorReviewRestrictionTypes,
		logger:                  logger,
		metrics:                 m,
	}
}

// ReviewIntervals returns the union of review intervals as a list. Prisoner
// restrictions and alerts are fetched concurrently; visitor restriction
// windows are fetched afterwards unless an open-ended prisoner interval
// already covers the whole window.
func (a *SignalAggregator) ReviewIntervals(ctx context.Context, req SignalRequest) []models.DateRange {
	var (
		mu        sync.Mutex
		prisoner  []models.RestrictionInterval
		intervals []models.DateRange
	)
	collect := func(found []models.RestrictionInterval) {
		mu.Lock()
		defer mu.Unlock()
		prisoner = append(prisoner, found...)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		collect(a.prisonerRestrictionIntervals(gctx, req.PrisonerID))
		return nil
	})
	g.Go(func() error {
		collect(a.alertIntervals(gctx, req.PrisonerID))
		return nil
	})
	// Neither signal returns an error; failures are absorbed above.
	_ = g.Wait()

	for _, ri := range prisoner {
		if r, ok := ri.Within(req.Window); ok {
			intervals = append(intervals, r)
		}
	}

	if coversWindow(prisoner, req.Window) {
		a.metrics.IncrementShortCircuit("review_covers_window")
		return intervals
	}
	if len(req.VisitorIDs) == 0 || len(a.visitorRestrictionTypes) == 0 {
		return intervals
	}
	return append(intervals, a.visitorRestrictionIntervals(ctx, req)...)
}

func (a *SignalAggregator) prisonerRestrictionIntervals(ctx context.Context, prisonerID string) []models.RestrictionInterval {
	start := time.Now()
	restrictions, err := a.prisoners.GetPrisonerRestrictionsForReview(ctx, prisonerID)
	a.metrics.ObserveSignalLatency(sourcePrisonerRestrictions, time.Since(start))
	if err != nil {
		a.failOpen(ctx, sourcePrisonerRestrictions, prisonerID, err)
		return nil
	}

	var out []models.RestrictionInterval
	for _, r := range restrictions {
		if _, ok := a.restrictionTypes[r.Type]; !ok {
			continue
		}
		out = append(out, models.RestrictionInterval{Kind: r.Type, Start: r.StartDate, Expiry: r.ExpiryDate})
	}
	return out
}

func (a *SignalAggregator) alertIntervals(ctx context.Context, prisonerID string) []models.RestrictionInterval {
	start := time.Now()
	alerts, err := a.alerts.GetPrisonerAlerts(ctx, prisonerID)
	a.metrics.ObserveSignalLatency(sourceAlerts, time.Since(start))
	if err != nil {
		a.failOpen(ctx, sourceAlerts, prisonerID, err)
		return nil
	}

	var out []models.RestrictionInterval
	for _, al := range alerts {
		if _, ok := a.alertCodes[al.Code]; !ok {
			continue
		}
		out = append(out, models.RestrictionInterval{Kind: al.Code, Start: al.ActiveFrom, Expiry: al.ActiveTo})
	}
	return out
}

func (a *SignalAggregator) visitorRestrictionIntervals(ctx context.Context, req SignalRequest) []models.DateRange {
	start := time.Now()
	windows, err := a.visitors.GetVisitorRestrictionWindows(ctx, req.PrisonerID, req.VisitorIDs, a.visitorRestrictionTypes, req.Window)
	a.metrics.ObserveSignalLatency(sourceVisitorRestrictions, time.Since(start))
	if err != nil {
		a.failOpen(ctx, sourceVisitorRestrictions, req.PrisonerID, err)
		return nil
	}

	out := make([]models.DateRange, 0, len(windows))
	for _, w := range windows {
		r := models.NewDateRange(w.From, w.To)
		if r.Overlaps(req.Window) {
			out = append(out, r)
		}
	}
	return out
}

func (a *SignalAggregator) failOpen(ctx context.Context, source, prisonerID string, err error) {
	a.metrics.IncrementSoftFailure(source)
	if a.logger != nil {
		a.logger.WarnContext(ctx, "review signal unavailable, assuming no restriction",
			"source", source,
			"prisoner_id", prisonerID,
			"error", err,
		)
	}
}

// coversWindow reports whether an open-ended interval starts on or before the
// window start, which puts every session under review.
func coversWindow(intervals []models.RestrictionInterval, window models.DateRange) bool {
	for _, ri := range intervals {
		if !ri.Unbounded() {
			continue
		}
		if r, ok := ri.Within(window); ok && r.Covers(window) {
			return true
		}
	}
	return false
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
