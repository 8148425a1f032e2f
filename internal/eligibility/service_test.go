package eligibility

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"visitgate/internal/eligibility/metrics"
	"visitgate/internal/eligibility/models"
	"visitgate/internal/eligibility/ports/mocks"
	dErrors "visitgate/pkg/domain-errors"
	"visitgate/pkg/requestcontext"
)

// =============================================================================
// Eligibility Pipeline Test Suite
// =============================================================================
// Today is Monday 2026-03-02. With a {min=2, max=28} policy the window is
// Thursday 2026-03-05 .. Monday 2026-03-30 and the candidate sessions fall on
// T+3, T+10 and T+17, all Thursdays.

type ServiceSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	prisons      *mocks.MockPrisonPort
	sessions     *mocks.MockSessionsPort
	restrictions *mocks.MockPrisonerRestrictionsPort
	alerts       *mocks.MockAlertsPort
	visitors     *mocks.MockVisitorsPort
	events       *mocks.MockScheduledEventsPort
	holidays     *mocks.MockBankHolidaysPort

	metrics *metrics.Metrics
	rules   Rules
	service *Service
	ctx     context.Context
	window  models.DateRange
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.prisons = mocks.NewMockPrisonPort(s.ctrl)
	s.sessions = mocks.NewMockSessionsPort(s.ctrl)
	s.restrictions = mocks.NewMockPrisonerRestrictionsPort(s.ctrl)
	s.alerts = mocks.NewMockAlertsPort(s.ctrl)
	s.visitors = mocks.NewMockVisitorsPort(s.ctrl)
	s.events = mocks.NewMockScheduledEventsPort(s.ctrl)
	s.holidays = mocks.NewMockBankHolidaysPort(s.ctrl)

	s.metrics = metrics.NewWithRegisterer(prometheus.NewRegistry())
	s.rules = Rules{
		ReviewRestrictionTypes:        []string{"RESTRICTED", "CHILD"},
		VisitorReviewRestrictionTypes: []string{"BAN", "CLOSED"},
		SupportedAlertCodes:           []string{"UPIU", "URS"},
		PriorityAppointmentCodes:      []string{"MEDO", "LACO"},
		SessionTypeFallback:           FallbackClosed,
	}
	s.service = s.newService(s.rules)

	s.ctx = requestcontext.WithTime(context.Background(), time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC))
	s.window = models.NewDateRange(date("2026-03-05"), date("2026-03-30"))
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceSuite) newService(rules Rules) *Service {
	svc, err := New(s.ports(), rules,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithMetrics(s.metrics),
	)
	s.Require().NoError(err)
	return svc
}

func (s *ServiceSuite) ports() Ports {
	return Ports{
		Prisons:              s.prisons,
		Sessions:             s.sessions,
		PrisonerRestrictions: s.restrictions,
		Alerts:               s.alerts,
		Visitors:             s.visitors,
		ScheduledEvents:      s.events,
		BankHolidays:         s.holidays,
	}
}

// -----------------------------------------------------------------------------
// Fixtures
// -----------------------------------------------------------------------------

func (s *ServiceSuite) request() AvailableSessionsRequest {
	return AvailableSessionsRequest{
		PrisonCode:         "HEI",
		PrisonerID:         "A1234BC",
		SessionRestriction: models.SessionRestrictionOpen,
		VisitorIDs:         []int64{1, 2, 3},
		UserType:           models.UserTypePublic,
	}
}

func candidateSessions() []models.AvailableVisitSession {
	return []models.AvailableVisitSession{
		session("2026-03-05", "ses-t3", "09:00", "10:00"),
		session("2026-03-12", "ses-t10", "09:00", "10:00"),
		session("2026-03-19", "ses-t17", "14:00", "15:00"),
	}
}

func (s *ServiceSuite) givenActivePrison() {
	s.prisons.EXPECT().GetPrison(gomock.Any(), "HEI").Return(&models.PrisonPolicy{
		PrisonCode: "HEI", Active: true, PolicyNoticeDaysMin: 2, PolicyNoticeDaysMax: 28,
	}, nil)
}

func (s *ServiceSuite) givenNoBans() {
	s.visitors.EXPECT().GetVisitorBannedWindow(gomock.Any(), "A1234BC", []int64{1, 2, 3}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ []int64, window models.DateRange) (*models.DateRange, error) {
			return &window, nil
		})
}

func (s *ServiceSuite) givenSessions(sessions []models.AvailableVisitSession) {
	s.sessions.EXPECT().GetAvailableSessions(gomock.Any(), gomock.Any()).Return(sessions, nil)
}

func (s *ServiceSuite) givenPrisonerSignals(restrictions []models.PrisonerRestriction, alerts []models.PrisonerAlert) {
	s.restrictions.EXPECT().GetPrisonerRestrictionsForReview(gomock.Any(), "A1234BC").Return(restrictions, nil)
	s.alerts.EXPECT().GetPrisonerAlerts(gomock.Any(), "A1234BC").Return(alerts, nil)
}

func (s *ServiceSuite) givenVisitorWindows(windows []models.DateRange) {
	s.visitors.EXPECT().GetVisitorRestrictionWindows(gomock.Any(), "A1234BC", []int64{1, 2, 3}, []string{"BAN", "CLOSED"}, gomock.Any()).
		Return(windows, nil)
}

func (s *ServiceSuite) givenHolidays(holidays []models.BankHoliday) {
	s.holidays.EXPECT().GetBankHolidays(gomock.Any(), gomock.Any()).Return(holidays, nil)
}

func flags(sessions []models.AvailableVisitSession) map[string]bool {
	out := make(map[string]bool, len(sessions))
	for _, ses := range sessions {
		out[ses.SessionTemplateReference] = ses.SessionForReview
	}
	return out
}

func refs(sessions []models.AvailableVisitSession) []string {
	out := make([]string, len(sessions))
	for i, ses := range sessions {
		out[i] = ses.SessionTemplateReference
	}
	return out
}

// =============================================================================
// Constructor Tests
// =============================================================================

func (s *ServiceSuite) TestNew() {
	s.Run("nil prison port returns error", func() {
		p := s.ports()
		p.Prisons = nil
		_, err := New(p, s.rules)
		s.Require().Error(err)
		s.Contains(err.Error(), "prison port is required")
	})

	s.Run("nil scheduled events port returns error", func() {
		p := s.ports()
		p.ScheduledEvents = nil
		_, err := New(p, s.rules)
		s.Require().Error(err)
		s.Contains(err.Error(), "scheduled events port is required")
	})

	s.Run("all ports returns configured service", func() {
		svc, err := New(s.ports(), s.rules)
		s.NoError(err)
		s.NotNil(svc)
	})
}

// =============================================================================
// Happy Path
// =============================================================================

func (s *ServiceSuite) TestNoSignalsReturnsSessionsUnflagged() {
	s.givenActivePrison()
	s.givenNoBans()
	s.sessions.EXPECT().GetAvailableSessions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q models.SessionQuery) ([]models.AvailableVisitSession, error) {
			s.Equal("2026-03-05..2026-03-30", q.Window.String())
			s.Equal(models.SessionRestrictionOpen, q.SessionRestriction)
			s.Equal(models.UserTypePublic, q.UserType)
			return candidateSessions(), nil
		})
	s.givenPrisonerSignals(nil, nil)
	s.givenVisitorWindows(nil)
	s.givenHolidays(nil)

	got, err := s.service.AvailableSessions(s.ctx, s.request())

	s.Require().NoError(err)
	s.Equal([]string{"ses-t3", "ses-t10", "ses-t17"}, refs(got))
	for _, ses := range got {
		s.False(ses.SessionForReview)
	}
}

func (s *ServiceSuite) TestUnboundedAlertFlagsEverySessionAndSkipsVisitorRestrictions() {
	s.givenActivePrison()
	s.givenNoBans()
	s.givenSessions(candidateSessions())
	s.givenPrisonerSignals(nil, []models.PrisonerAlert{{Code: "UPIU", ActiveFrom: date("2026-03-02")}})
	s.visitors.EXPECT().GetVisitorRestrictionWindows(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.givenHolidays(nil)

	got, err := s.service.AvailableSessions(s.ctx, s.request())

	s.Require().NoError(err)
	s.Len(got, 3)
	for _, ses := range got {
		s.True(ses.SessionForReview)
	}
	s.Equal(1.0, promtestutil.ToFloat64(s.metrics.ShortCircuits.WithLabelValues("review_covers_window")))
}

func (s *ServiceSuite) TestUnboundedRestrictionStartingMidWindowStillFetchesVisitorRestrictions() {
	s.givenActivePrison()
	s.givenNoBans()
	s.givenSessions(candidateSessions())
	s.givenPrisonerSignals([]models.PrisonerRestriction{{Type: "CHILD", StartDate: date("2026-03-11")}}, nil)
	s.givenVisitorWindows(nil)
	s.givenHolidays(nil)

	got, err := s.service.AvailableSessions(s.ctx, s.request())

	s.Require().NoError(err)
	s.Equal(map[string]bool{"ses-t3": false, "ses-t10": true, "ses-t17": true}, flags(got))
}

func (s *ServiceSuite) TestReviewFlagIsUnionOfSignals() {
	expiry := date("2026-03-06")
	s.givenActivePrison()
	s.givenNoBans()
	s.givenSessions(candidateSessions())
	s.givenPrisonerSignals(
		[]models.PrisonerRestriction{
			{Type: "RESTRICTED", StartDate: date("2026-02-01"), ExpiryDate: &expiry},
			{Type: "NOT_FOR_REVIEW", StartDate: date("2026-02-01")},
		},
		[]models.PrisonerAlert{{Code: "XA", ActiveFrom: date("2026-02-01")}},
	)
	s.givenVisitorWindows([]models.DateRange{models.NewDateRange(date("2026-03-19"), date("2026-03-19"))})
	s.givenHolidays(nil)

	got, err := s.service.AvailableSessions(s.ctx, s.request())

	s.Require().NoError(err)
	s.Equal(map[string]bool{"ses-t3": true, "ses-t10": false, "ses-t17": true}, flags(got))
}

func (s *ServiceSuite) TestResultsAreSortedByDateThenReference() {
	unordered := []models.AvailableVisitSession{
		session("2026-03-12", "b", "09:00", "10:00"),
		session("2026-03-05", "z", "09:00", "10:00"),
		session("2026-03-12", "a", "09:00", "10:00"),
	}
	s.givenActivePrison()
	s.givenNoBans()
	s.givenSessions(unordered)
	s.givenPrisonerSignals(nil, nil)
	s.givenVisitorWindows(nil)
	s.givenHolidays(nil)

	got, err := s.service.AvailableSessions(s.ctx, s.request())

	s.Require().NoError(err)
	s.Equal([]string{"z", "a", "b"}, refs(got))
}

func (s *ServiceSuite) TestRepeatedRequestIsIdempotent() {
	for i := 0; i < 2; i++ {
		s.givenActivePrison()
		s.givenNoBans()
		s.givenSessions(candidateSessions())
		s.givenPrisonerSignals(nil, []models.PrisonerAlert{{Code: "URS", ActiveFrom: date("2026-03-10"), ActiveTo: ptr(date("2026-03-12"))}})
		s.givenVisitorWindows(nil)
		s.givenHolidays(nil)
	}

	first, err := s.service.AvailableSessions(s.ctx, s.request())
	s.Require().NoError(err)
	second, err := s.service.AvailableSessions(s.ctx, s.request())
	s.Require().NoError(err)

	s.Equal(first, second)
}

// =============================================================================
// Short-circuits
// =============================================================================

func (s *ServiceSuite) TestBannedForWholeWindowReturnsEmptyWithoutFurtherCalls() {
	s.givenActivePrison()
	s.visitors.EXPECT().GetVisitorBannedWindow(gomock.Any(), "A1234BC", []int64{1, 2, 3}, gomock.Any()).Return(nil, nil)
	s.sessions.EXPECT().GetAvailableSessions(gomock.Any(), gomock.Any()).Times(0)

	req := s.request()
	req.SessionRestriction = ""
	req.WithAppointmentsCheck = true
	got, err := s.service.AvailableSessions(s.ctx, req)

	s.Require().NoError(err)
	s.NotNil(got)
	s.Empty(got)
	s.Equal(1.0, promtestutil.ToFloat64(s.metrics.ShortCircuits.WithLabelValues("no_bookable_window")))
}

func (s *ServiceSuite) TestNoCandidateSessionsSkipsSignalsAndAppointments() {
	s.givenActivePrison()
	s.givenNoBans()
	s.givenSessions(nil)

	req := s.request()
	req.WithAppointmentsCheck = true
	got, err := s.service.AvailableSessions(s.ctx, req)

	s.Require().NoError(err)
	s.NotNil(got)
	s.Empty(got)
}

func (s *ServiceSuite) TestInactivePrisonReturnsEmpty() {
	s.prisons.EXPECT().GetPrison(gomock.Any(), "HEI").Return(&models.PrisonPolicy{PrisonCode: "HEI", PolicyNoticeDaysMin: 2, PolicyNoticeDaysMax: 28}, nil)

	got, err := s.service.AvailableSessions(s.ctx, s.request())

	s.Require().NoError(err)
	s.Empty(got)
}

func (s *ServiceSuite) TestStaffRequestWithoutVisitorsSkipsVisitorCollaborators() {
	s.givenActivePrison()
	s.givenSessions(candidateSessions())
	s.givenPrisonerSignals(nil, nil)
	s.givenHolidays(nil)

	req := s.request()
	req.UserType = models.UserTypeStaff
	req.VisitorIDs = nil
	got, err := s.service.AvailableSessions(s.ctx, req)

	s.Require().NoError(err)
	s.Len(got, 3)
}

// =============================================================================
// Ban moderation
// =============================================================================

func (s *ServiceSuite) TestBanNarrowsWindowForSessionFetch() {
	s.givenActivePrison()
	s.visitors.EXPECT().GetVisitorBannedWindow(gomock.Any(), "A1234BC", []int64{1, 2, 3}, s.window).
		Return(&models.DateRange{From: date("2026-03-10"), To: date("2026-03-30")}, nil)
	s.sessions.EXPECT().GetAvailableSessions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q models.SessionQuery) ([]models.AvailableVisitSession, error) {
			s.Equal("2026-03-10..2026-03-30", q.Window.String())
			return candidateSessions()[1:], nil
		})
	s.givenPrisonerSignals(nil, nil)
	s.visitors.EXPECT().GetVisitorRestrictionWindows(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	s.givenHolidays(nil)

	got, err := s.service.AvailableSessions(s.ctx, s.request())

	s.Require().NoError(err)
	s.Equal(map[string]bool{"ses-t10": false, "ses-t17": false}, flags(got))
}

func (s *ServiceSuite) TestBanWindowWiderThanPolicyIsClamped() {
	s.givenActivePrison()
	s.visitors.EXPECT().GetVisitorBannedWindow(gomock.Any(), "A1234BC", []int64{1, 2, 3}, s.window).
		Return(&models.DateRange{From: date("2026-03-01"), To: date("2026-05-30")}, nil)
	s.sessions.EXPECT().GetAvailableSessions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q models.SessionQuery) ([]models.AvailableVisitSession, error) {
			s.Equal(s.window, q.Window)
			return candidateSessions(), nil
		})
	s.givenPrisonerSignals(nil, nil)
	s.visitors.EXPECT().GetVisitorRestrictionWindows(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), s.window).Return(nil, nil)
	s.givenHolidays(nil)

	got, err := s.service.AvailableSessions(s.ctx, s.request())

	s.Require().NoError(err)
	s.Len(got, 3)
}

func (s *ServiceSuite) TestBanWindowOutsidePolicyHasNoBookableDates() {
	s.givenActivePrison()
	s.visitors.EXPECT().GetVisitorBannedWindow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.DateRange{From: date("2026-04-10"), To: date("2026-04-20")}, nil)

	got, err := s.service.AvailableSessions(s.ctx, s.request())

	s.Require().NoError(err)
	s.Empty(got)
	s.Equal(1.0, promtestutil.ToFloat64(s.metrics.ShortCircuits.WithLabelValues("no_bookable_window")))
}

func (s *ServiceSuite) TestBanLookupFailurePropagates() {
	s.givenActivePrison()
	s.visitors.EXPECT().GetVisitorBannedWindow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, dErrors.New(dErrors.CodeUnavailable, "contacts unavailable"))

	_, err := s.service.AvailableSessions(s.ctx, s.request())

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
}

// =============================================================================
// Failure policies
// =============================================================================

func (s *ServiceSuite) TestReviewSignalFailuresFailOpen() {
	s.givenActivePrison()
	s.givenNoBans()
	s.givenSessions(candidateSessions())
	s.restrictions.EXPECT().GetPrisonerRestrictionsForReview(gomock.Any(), gomock.Any()).Return(nil, dErrors.New(dErrors.CodeNotFound, "prisoner not found"))
	s.alerts.EXPECT().GetPrisonerAlerts(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
	s.visitors.EXPECT().GetVisitorRestrictionWindows(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, dErrors.New(dErrors.CodeTimeout, "contacts timed out"))
	s.givenHolidays(nil)

	got, err := s.service.AvailableSessions(s.ctx, s.request())

	s.Require().NoError(err)
	s.Len(got, 3)
	for _, ses := range got {
		s.False(ses.SessionForReview)
	}
	for _, source := range []string{"prisoner_restrictions", "alerts", "visitor_restrictions"} {
		s.Equal(1.0, promtestutil.ToFloat64(s.metrics.SoftFailures.WithLabelValues(source)), source)
	}
}

func (s *ServiceSuite) TestSessionFetchFailurePropagatesUpstreamStatus() {
	s.givenActivePrison()
	s.givenNoBans()
	upstream := dErrors.WithStatus(dErrors.New(dErrors.CodeNotFound, "prisoner not known to scheduler"), http.StatusNotFound)
	s.sessions.EXPECT().GetAvailableSessions(gomock.Any(), gomock.Any()).Return(nil, upstream)

	_, err := s.service.AvailableSessions(s.ctx, s.request())

	s.Require().Error(err)
	s.Equal(http.StatusNotFound, dErrors.StatusOf(err))
}

func (s *ServiceSuite) TestUnknownPrisonPropagates() {
	s.prisons.EXPECT().GetPrison(gomock.Any(), "HEI").Return(nil, dErrors.New(dErrors.CodeNotFound, "prison not found"))

	_, err := s.service.AvailableSessions(s.ctx, s.request())

	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestPublicRequestWithoutVisitorsIsRejected() {
	req := s.request()
	req.VisitorIDs = nil

	_, err := s.service.AvailableSessions(s.ctx, req)

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	s.Equal(http.StatusBadRequest, dErrors.StatusOf(err))
}

// =============================================================================
// Appointment clashes
// =============================================================================

func (s *ServiceSuite) TestAppointmentCheckRemovesClashingSessions() {
	s.givenActivePrison()
	s.givenNoBans()
	s.givenSessions(candidateSessions())
	s.givenPrisonerSignals(nil, nil)
	s.givenVisitorWindows(nil)
	s.givenHolidays(nil)
	s.events.EXPECT().GetScheduledEvents(gomock.Any(), "A1234BC", date("2026-03-05"), date("2026-03-30")).
		Return([]models.ScheduledEvent{
			appointment("2026-03-12", "MEDO", clock("09:30"), clock("09:45")),
			appointment("2026-03-19", "LACO", clock("13:00"), clock("14:00")),
		}, nil)

	req := s.request()
	req.WithAppointmentsCheck = true
	got, err := s.service.AvailableSessions(s.ctx, req)

	s.Require().NoError(err)
	s.Equal([]string{"ses-t3", "ses-t17"}, refs(got))
	s.Equal(1.0, promtestutil.ToFloat64(s.metrics.SessionsRemoved.WithLabelValues("appointment_clash")))
}

func (s *ServiceSuite) TestAppointmentFetchFailurePropagates() {
	s.givenActivePrison()
	s.givenNoBans()
	s.givenSessions(candidateSessions())
	s.restrictions.EXPECT().GetPrisonerRestrictionsForReview(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	s.alerts.EXPECT().GetPrisonerAlerts(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	s.visitors.EXPECT().GetVisitorRestrictionWindows(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	s.holidays.EXPECT().GetBankHolidays(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	s.events.EXPECT().GetScheduledEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, dErrors.WithStatus(dErrors.New(dErrors.CodeBadGateway, "whereabouts failed"), http.StatusInternalServerError))

	req := s.request()
	req.WithAppointmentsCheck = true
	_, err := s.service.AvailableSessions(s.ctx, req)

	s.Require().Error(err)
	s.Equal(http.StatusInternalServerError, dErrors.StatusOf(err))
}

// =============================================================================
// Weekend and bank holiday cutoff
// =============================================================================

func (s *ServiceSuite) TestSessionsBeforeHolidayCutoffAreDropped() {
	s.givenActivePrison()
	s.givenNoBans()
	s.givenSessions(candidateSessions())
	s.givenPrisonerSignals(nil, nil)
	s.givenVisitorWindows(nil)
	s.givenHolidays([]models.BankHoliday{{Date: date("2026-03-05"), Title: "Local holiday"}})

	got, err := s.service.AvailableSessions(s.ctx, s.request())

	s.Require().NoError(err)
	s.Equal([]string{"ses-t10", "ses-t17"}, refs(got))
}

func (s *ServiceSuite) TestBankHolidayFailureFallsBackToWeekendsOnly() {
	s.givenActivePrison()
	s.givenNoBans()
	s.givenSessions(candidateSessions())
	s.givenPrisonerSignals(nil, nil)
	s.givenVisitorWindows(nil)
	s.holidays.EXPECT().GetBankHolidays(gomock.Any(), gomock.Any()).Return(nil, errors.New("gov.uk unreachable"))

	got, err := s.service.AvailableSessions(s.ctx, s.request())

	s.Require().NoError(err)
	s.Len(got, 3)
	s.Equal(1.0, promtestutil.ToFloat64(s.metrics.SoftFailures.WithLabelValues("bank_holidays")))
}

// =============================================================================
// Session type resolution
// =============================================================================

func (s *ServiceSuite) expectSessionRestriction(want models.SessionRestriction) {
	s.sessions.EXPECT().GetAvailableSessions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q models.SessionQuery) ([]models.AvailableVisitSession, error) {
			s.Equal(want, q.SessionRestriction)
			return nil, nil
		})
}

func (s *ServiceSuite) TestSessionTypeResolution() {
	closedRestriction := []models.PrisonerRestriction{{Type: "CLOSED", StartDate: date("2026-01-01")}}
	expired := []models.PrisonerRestriction{{Type: "CLOSED", StartDate: date("2026-01-01"), ExpiryDate: ptr(date("2026-02-01"))}}

	tests := []struct {
		name         string
		restrictions []models.PrisonerRestriction
		restrErr     error
		visitorCheck bool
		visitorsShut bool
		want         models.SessionRestriction
	}{
		{name: "closed prisoner restriction", restrictions: closedRestriction, want: models.SessionRestrictionClosed},
		{name: "expired closed restriction is ignored", restrictions: expired, visitorCheck: true, want: models.SessionRestrictionOpen},
		{name: "closed visitor restriction", visitorCheck: true, visitorsShut: true, want: models.SessionRestrictionClosed},
		{name: "no restrictions", visitorCheck: true, want: models.SessionRestrictionOpen},
		{name: "lookup failure assumes closed", restrErr: errors.New("boom"), want: models.SessionRestrictionClosed},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.givenActivePrison()
			s.givenNoBans()
			s.restrictions.EXPECT().GetPrisonerRestrictionsForSessionType(gomock.Any(), "A1234BC").Return(tt.restrictions, tt.restrErr)
			if tt.visitorCheck {
				s.visitors.EXPECT().DoVisitorsHaveClosedRestriction(gomock.Any(), "A1234BC", []int64{1, 2, 3}).Return(tt.visitorsShut, nil)
			}
			s.expectSessionRestriction(tt.want)

			req := s.request()
			req.SessionRestriction = ""
			_, err := s.service.AvailableSessions(s.ctx, req)
			s.Require().NoError(err)
		})
	}
}

func (s *ServiceSuite) TestSessionTypeFailurePropagatesWhenConfigured() {
	rules := s.rules
	rules.SessionTypeFallback = FallbackPropagate
	svc := s.newService(rules)

	s.givenActivePrison()
	s.givenNoBans()
	s.restrictions.EXPECT().GetPrisonerRestrictionsForSessionType(gomock.Any(), gomock.Any()).
		Return(nil, dErrors.WithStatus(dErrors.New(dErrors.CodeNotFound, "offender not found"), http.StatusNotFound))

	req := s.request()
	req.SessionRestriction = ""
	_, err := svc.AvailableSessions(s.ctx, req)

	s.Require().Error(err)
	s.Equal(http.StatusNotFound, dErrors.StatusOf(err))
}

func ptr[T any](v T) *T { return &v }
