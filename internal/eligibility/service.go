// Package eligibility decides which visit sessions a prisoner can be booked
// into and which of them need manual review.
package eligibility

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"visitgate/internal/eligibility/metrics"
	"visitgate/internal/eligibility/models"
	"visitgate/internal/eligibility/ports"
	dErrors "visitgate/pkg/domain-errors"
	"visitgate/pkg/requestcontext"
)

const tracerName = "visitgate/internal/eligibility"

// Ports groups the collaborators the pipeline reads from.
type Ports struct {
	Prisons              ports.PrisonPort
	Sessions             ports.SessionsPort
	PrisonerRestrictions ports.PrisonerRestrictionsPort
	Alerts               ports.AlertsPort
	Visitors             ports.VisitorsPort
	ScheduledEvents      ports.ScheduledEventsPort
	BankHolidays         ports.BankHolidaysPort
}

// Rules are the configurable code sets the pipeline filters signals by.
type Rules struct {
	ReviewRestrictionTypes        []string
	VisitorReviewRestrictionTypes []string
	SupportedAlertCodes           []string
	PriorityAppointmentCodes      []string
	SessionTypeFallback           SessionTypeFallback
}

// AvailableSessionsRequest is a validated request for bookable sessions.
type AvailableSessionsRequest struct {
	PrisonCode string
	PrisonerID string
	// SessionRestriction is resolved from the prisoner and visitors when empty.
	SessionRestriction           models.SessionRestriction
	VisitorIDs                   []int64
	WithAppointmentsCheck        bool
	ExcludedApplicationReference string
	UserType                     models.UserType
	Overrides                    WindowOverrides
}

// Validate enforces the invariants the pipeline relies on.
func (r AvailableSessionsRequest) Validate() error {
	if r.PrisonCode == "" {
		return dErrors.New(dErrors.CodeValidation, "prisonId is required")
	}
	if r.PrisonerID == "" {
		return dErrors.New(dErrors.CodeValidation, "prisonerId is required")
	}
	if r.UserType == models.UserTypePublic && len(r.VisitorIDs) == 0 {
		return dErrors.New(dErrors.CodeValidation, "at least one visitor is required")
	}
	for _, id := range r.VisitorIDs {
		if id <= 0 {
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("invalid visitor id %d", id))
		}
	}
	return nil
}

// Service runs the eligibility pipeline.
type Service struct {
	ports   Ports
	bans    *BanModerator
	signals *SignalAggregator
	types   *SessionTypeResolver
	clashes ClashDetector
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

func New(p Ports, rules Rules, opts ...Option) (*Service, error) {
	switch {
	case p.Prisons == nil:
		return nil, fmt.Errorf("prison port is required")
	case p.Sessions == nil:
		return nil, fmt.Errorf("sessions port is required")
	case p.PrisonerRestrictions == nil:
		return nil, fmt.Errorf("prisoner restrictions port is required")
	case p.Alerts == nil:
		return nil, fmt.Errorf("alerts port is required")
	case p.Visitors == nil:
		return nil, fmt.Errorf("visitors port is required")
	case p.ScheduledEvents == nil:
		return nil, fmt.Errorf("scheduled events port is required")
	case p.BankHolidays == nil:
		return nil, fmt.Errorf("bank holidays port is required")
	}

	svc := &Service{
		ports: p,
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.tracer == nil {
		svc.tracer = otel.Tracer(tracerName)
	}

	svc.bans = NewBanModerator(p.Visitors)
	svc.signals = newSignalAggregator(p.PrisonerRestrictions, p.Alerts, p.Visitors, rules, svc.logger, svc.metrics)
	svc.types = newSessionTypeResolver(p.PrisonerRestrictions, p.Visitors, rules.SessionTypeFallback, svc.logger)
	svc.clashes = NewClashDetector(rules.PriorityAppointmentCodes)
	return svc, nil
}

// AvailableSessions returns the bookable sessions for the request, each
// flagged for review when a restriction, alert or visitor ban covers its date.
// Failures of the session or scheduled-event fetch are returned unchanged so
// their upstream status reaches the caller.
func (s *Service) AvailableSessions(ctx context.Context, req AvailableSessionsRequest) (result []models.AvailableVisitSession, err error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "eligibility.AvailableSessions", trace.WithAttributes(
		attribute.String("prison.code", req.PrisonCode),
		attribute.Int("visitors.count", len(req.VisitorIDs)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(attribute.Int("sessions.count", len(result)))
		}
		span.End()
		s.metrics.ObserveEvaluateLatency(time.Since(start))
	}()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	policy, err := s.ports.Prisons.GetPrison(ctx, req.PrisonCode)
	if err != nil {
		return nil, err
	}
	if policy == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("prison %s not found", req.PrisonCode))
	}
	if !policy.Active {
		return s.empty(ctx, "prison_inactive", req)
	}

	today := requestcontext.Now(ctx)
	policyWindow := ComputeWindow(*policy, today, req.Overrides)

	window, err := s.bans.Moderate(ctx, req.PrisonerID, req.VisitorIDs, policyWindow)
	if err != nil {
		return nil, err
	}
	if window == nil {
		return s.empty(ctx, "no_bookable_window", req)
	}

	restriction := req.SessionRestriction
	if restriction == "" {
		restriction, err = s.types.Resolve(ctx, req.PrisonerID, req.VisitorIDs, today)
		if err != nil {
			return nil, err
		}
	}

	sessions, err := s.ports.Sessions.GetAvailableSessions(ctx, models.SessionQuery{
		PrisonCode:                   req.PrisonCode,
		PrisonerID:                   req.PrisonerID,
		SessionRestriction:           restriction,
		Window:                       *window,
		UserType:                     req.UserType,
		ExcludedApplicationReference: req.ExcludedApplicationReference,
	})
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return s.empty(ctx, "no_candidate_sessions", req)
	}

	var (
		intervals []models.DateRange
		events    []models.ScheduledEvent
		holidays  []models.BankHoliday
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		intervals = s.signals.ReviewIntervals(gctx, SignalRequest{
			PrisonerID: req.PrisonerID,
			VisitorIDs: req.VisitorIDs,
			Window:     *window,
		})
		return nil
	})
	if req.WithAppointmentsCheck {
		g.Go(func() error {
			fetchStart := time.Now()
			found, err := s.ports.ScheduledEvents.GetScheduledEvents(gctx, req.PrisonerID, window.From, window.To)
			s.metrics.ObserveSignalLatency(sourceScheduledEvents, time.Since(fetchStart))
			if err != nil {
				return err
			}
			events = found
			return nil
		})
	}
	g.Go(func() error {
		holidays = s.bankHolidays(gctx, policyWindow)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if req.WithAppointmentsCheck {
		before := len(sessions)
		sessions = s.clashes.Filter(sessions, events)
		s.metrics.AddSessionsRemoved("appointment_clash", before-len(sessions))
	}

	cutoff := NextBookableDate(policyWindow.From, NewHolidaySet(holidays))
	before := len(sessions)
	sessions = DropBeforeCutoff(sessions, cutoff)
	s.metrics.AddSessionsRemoved("before_cutoff", before-len(sessions))

	result = Annotate(sessions, intervals)
	SortSessions(result)
	return result, nil
}

// bankHolidays fails open: without holidays the cutoff still skips weekends.
func (s *Service) bankHolidays(ctx context.Context, window models.DateRange) []models.BankHoliday {
	start := time.Now()
	holidays, err := s.ports.BankHolidays.GetBankHolidays(ctx, window)
	s.metrics.ObserveSignalLatency(sourceBankHolidays, time.Since(start))
	if err != nil {
		s.metrics.IncrementSoftFailure(sourceBankHolidays)
		if s.logger != nil {
			s.logger.WarnContext(ctx, "bank holidays unavailable, adjusting for weekends only",
				"window", window.String(),
				"error", err,
			)
		}
		return nil
	}
	return holidays
}

func (s *Service) empty(ctx context.Context, reason string, req AvailableSessionsRequest) ([]models.AvailableVisitSession, error) {
	s.metrics.IncrementShortCircuit(reason)
	if s.logger != nil {
		s.logger.DebugContext(ctx, "no sessions available",
			"reason", reason,
			"prison_code", req.PrisonCode,
			"prisoner_id", req.PrisonerID,
		)
	}
	return []models.AvailableVisitSession{}, nil
}
