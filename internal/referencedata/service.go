// Package referencedata serves prison policy and bank holidays to the
// eligibility engine through a cache-aside layer.
package referencedata

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"visitgate/internal/eligibility/models"
	"visitgate/internal/eligibility/ports"
	"visitgate/pkg/platform/sentinel"
)

// PrisonSource is the system of record for prison policy.
type PrisonSource interface {
	GetPrison(ctx context.Context, prisonCode string) (*models.PrisonPolicy, error)
}

// HolidaySource publishes the full bank holiday calendar.
type HolidaySource interface {
	ListBankHolidays(ctx context.Context) ([]models.BankHoliday, error)
}

// Cache stores reference data. Find methods return sentinel.ErrNotFound on a
// miss.
type Cache interface {
	FindPrison(ctx context.Context, prisonCode string) (*models.PrisonPolicy, error)
	SavePrison(ctx context.Context, policy *models.PrisonPolicy) error
	FindBankHolidays(ctx context.Context) ([]models.BankHoliday, error)
	SaveBankHolidays(ctx context.Context, holidays []models.BankHoliday) error
}

// Service coordinates reference-data lookups with caching.
type Service struct {
	prisons  PrisonSource
	holidays HolidaySource
	cache    Cache
	group    singleflight.Group
	timeout  time.Duration
	logger   *slog.Logger
}

var (
	_ ports.PrisonPort       = (*Service)(nil)
	_ ports.BankHolidaysPort = (*Service)(nil)
)

type Option func(*Service)

func WithCache(cache Cache) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

// WithFetchTimeout bounds a shared source fetch. The fetch outlives the caller
// that started it, so it needs its own deadline.
func WithFetchTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(prisons PrisonSource, holidays HolidaySource, opts ...Option) (*Service, error) {
	if prisons == nil {
		return nil, fmt.Errorf("prison source is required")
	}
	if holidays == nil {
		return nil, fmt.Errorf("holiday source is required")
	}
	svc := &Service{prisons: prisons, holidays: holidays, timeout: 10 * time.Second}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// GetPrison returns the policy for prisonCode. Source errors, including an
// unknown prison, are returned unchanged and never cached.
func (s *Service) GetPrison(ctx context.Context, prisonCode string) (*models.PrisonPolicy, error) {
	if s.cache != nil {
		cached, err := s.cache.FindPrison(ctx, prisonCode)
		if err == nil {
			return cached, nil
		}
		s.cacheFailure(ctx, "find prison", err)
	}

	v, err, _ := s.group.Do("prison:"+prisonCode, func() (any, error) {
		ctx, cancel := s.shared(ctx)
		defer cancel()
		policy, err := s.prisons.GetPrison(ctx, prisonCode)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			s.cacheFailure(ctx, "save prison", s.cache.SavePrison(ctx, policy))
		}
		return policy, nil
	})
	if err != nil {
		return nil, err
	}
	policy, _ := v.(*models.PrisonPolicy)
	return policy, nil
}

// GetBankHolidays returns the holidays falling inside window.
func (s *Service) GetBankHolidays(ctx context.Context, window models.DateRange) ([]models.BankHoliday, error) {
	all, err := s.calendar(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.BankHoliday
	for _, h := range all {
		if window.Contains(h.Date) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (s *Service) calendar(ctx context.Context) ([]models.BankHoliday, error) {
	if s.cache != nil {
		cached, err := s.cache.FindBankHolidays(ctx)
		if err == nil {
			return cached, nil
		}
		s.cacheFailure(ctx, "find bank holidays", err)
	}

	v, err, _ := s.group.Do("bank-holidays", func() (any, error) {
		ctx, cancel := s.shared(ctx)
		defer cancel()
		holidays, err := s.holidays.ListBankHolidays(ctx)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			s.cacheFailure(ctx, "save bank holidays", s.cache.SaveBankHolidays(ctx, holidays))
		}
		return holidays, nil
	})
	if err != nil {
		return nil, err
	}
	holidays, _ := v.([]models.BankHoliday)
	return holidays, nil
}

// shared detaches a coalesced fetch from the caller that happened to start it,
// so one disconnecting client does not fail every request waiting on the key.
func (s *Service) shared(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
}

// cacheFailure logs cache errors other than a miss. The source is always
// consulted after a failed read.
func (s *Service) cacheFailure(ctx context.Context, op string, err error) {
	if err == nil || errors.Is(err, sentinel.ErrNotFound) || s.logger == nil {
		return
	}
	s.logger.WarnContext(ctx, "reference data cache error",
		"op", op,
		"unavailable", errors.Is(err, sentinel.ErrUnavailable),
		"error", err,
	)
}
