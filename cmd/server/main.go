package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"visitgate/internal/downstream"
	"visitgate/internal/downstream/alerts"
	"visitgate/internal/downstream/bankholidays"
	"visitgate/internal/downstream/contacts"
	"visitgate/internal/downstream/prisonapi"
	"visitgate/internal/downstream/scheduler"
	"visitgate/internal/downstream/whereabouts"
	"visitgate/internal/eligibility"
	"visitgate/internal/eligibility/adapters"
	eligibilityHandler "visitgate/internal/eligibility/handler"
	eligibilityMetrics "visitgate/internal/eligibility/metrics"
	"visitgate/internal/platform/config"
	"visitgate/internal/platform/httpserver"
	"visitgate/internal/platform/logger"
	"visitgate/internal/platform/metrics"
	platformotel "visitgate/internal/platform/otel"
	platformredis "visitgate/internal/platform/redis"
	"visitgate/internal/referencedata"
	"visitgate/internal/referencedata/store"
	"visitgate/pkg/platform/circuit"
	platformstrings "visitgate/pkg/platform/strings"
)

const serviceName = "visitgate"

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := platformotel.Setup(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(flushCtx)
	}()

	rdb, err := platformredis.New(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	if rdb != nil {
		defer rdb.Close()
	}

	svc, err := buildEligibility(cfg, log, rdb)
	if err != nil {
		return err
	}

	deps := routerDeps{
		logger:         log,
		metrics:        metrics.New(),
		requestTimeout: cfg.RequestTimeout,
		eligibility:    eligibilityHandler.New(svc, log),
	}
	if rdb != nil {
		deps.redis = rdb
	}
	router := newRouter(deps)
	srv := httpserver.New(cfg.Addr, router, cfg.RequestTimeout)

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting visitgate", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func buildEligibility(cfg config.Server, log *slog.Logger, rdb *platformredis.Client) (*eligibility.Service, error) {
	ds := cfg.Downstream
	newClient := func(name, baseURL string) (*downstream.Client, error) {
		return downstream.NewClient(name, baseURL,
			downstream.WithTimeout(ds.Timeout),
			downstream.WithBreaker(circuit.New(name,
				circuit.WithFailureThreshold(ds.BreakerFailures),
				circuit.WithCooldown(ds.BreakerCooldown),
			)),
			downstream.WithLogger(log),
		)
	}

	schedulerHTTP, err := newClient("visit-scheduler", ds.SchedulerURL)
	if err != nil {
		return nil, err
	}
	prisonHTTP, err := newClient("prison-api", ds.PrisonAPIURL)
	if err != nil {
		return nil, err
	}
	alertsHTTP, err := newClient("alerts", ds.AlertsURL)
	if err != nil {
		return nil, err
	}
	contactsHTTP, err := newClient("contacts-registry", ds.ContactsURL)
	if err != nil {
		return nil, err
	}
	whereaboutsHTTP, err := newClient("whereabouts", ds.WhereaboutsURL)
	if err != nil {
		return nil, err
	}
	holidaysHTTP, err := newClient("bank-holidays", ds.BankHolidaysURL)
	if err != nil {
		return nil, err
	}

	schedulerAdapter := adapters.NewSchedulerAdapter(scheduler.New(schedulerHTTP))

	var cache referencedata.Cache = store.NewInMemoryCache(cfg.Engine.ReferenceCacheTTL)
	if rdb != nil {
		cache = store.NewRedisCache(rdb.Client, cfg.Engine.ReferenceCacheTTL)
	}
	reference, err := referencedata.New(
		schedulerAdapter,
		adapters.NewBankHolidaysAdapter(bankholidays.New(holidaysHTTP)),
		referencedata.WithCache(cache),
		referencedata.WithFetchTimeout(ds.Timeout),
		referencedata.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	fallback, err := eligibility.ParseSessionTypeFallback(cfg.Engine.SessionTypeFallback)
	if err != nil {
		return nil, err
	}

	return eligibility.New(
		eligibility.Ports{
			Prisons:              reference,
			Sessions:             schedulerAdapter,
			PrisonerRestrictions: adapters.NewPrisonerRestrictionsAdapter(prisonapi.New(prisonHTTP)),
			Alerts:               adapters.NewAlertsAdapter(alerts.New(alertsHTTP)),
			Visitors:             adapters.NewContactsAdapter(contacts.New(contactsHTTP)),
			ScheduledEvents:      adapters.NewScheduledEventsAdapter(whereabouts.New(whereaboutsHTTP)),
			BankHolidays:         reference,
		},
		eligibility.Rules{
			ReviewRestrictionTypes:        platformstrings.DedupeCodes(cfg.Engine.ReviewRestrictionTypes),
			VisitorReviewRestrictionTypes: platformstrings.DedupeCodes(cfg.Engine.VisitorReviewRestrictionTypes),
			SupportedAlertCodes:           platformstrings.DedupeCodes(cfg.Engine.SupportedAlertCodes),
			PriorityAppointmentCodes:      platformstrings.DedupeCodes(cfg.Engine.PriorityAppointmentCodes),
			SessionTypeFallback:           fallback,
		},
		eligibility.WithLogger(log),
		eligibility.WithMetrics(eligibilityMetrics.New()),
	)
}
