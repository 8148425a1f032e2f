// Package store caches reference data that changes rarely: prison booking
// policy and the bank holiday calendar.
package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"visitgate/internal/eligibility/models"
	"visitgate/pkg/platform/sentinel"
)

type cachedPrison struct {
	policy   models.PrisonPolicy
	storedAt time.Time
}

type cachedHolidays struct {
	holidays []models.BankHoliday
	storedAt time.Time
}

// InMemoryCache provides an in-memory cache for reference data with TTL expiration.
type InMemoryCache struct {
	mu       sync.RWMutex
	prisons  map[string]cachedPrison
	holidays *cachedHolidays
	cacheTTL time.Duration
	now      func() time.Time
}

// NewInMemoryCache creates a new in-memory cache with the specified TTL.
func NewInMemoryCache(cacheTTL time.Duration) *InMemoryCache {
	return &InMemoryCache{
		prisons:  make(map[string]cachedPrison),
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

// SavePrison stores a prison policy keyed by prison code.
// If policy is nil, the operation is a no-op and returns nil.
func (c *InMemoryCache) SavePrison(_ context.Context, policy *models.PrisonPolicy) error {
	if policy == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prisons[policy.PrisonCode] = cachedPrison{policy: *policy, storedAt: c.now()}
	return nil
}

// FindPrison returns sentinel.ErrNotFound if the policy is missing or has
// expired past the cache TTL.
func (c *InMemoryCache) FindPrison(_ context.Context, prisonCode string) (*models.PrisonPolicy, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if cached, ok := c.prisons[prisonCode]; ok && c.fresh(cached.storedAt) {
		policy := cached.policy
		return &policy, nil
	}
	return nil, sentinel.ErrNotFound
}

func (c *InMemoryCache) SaveBankHolidays(_ context.Context, holidays []models.BankHoliday) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.holidays = &cachedHolidays{holidays: slices.Clone(holidays), storedAt: c.now()}
	return nil
}

// FindBankHolidays returns sentinel.ErrNotFound if the calendar is missing or
// stale.
func (c *InMemoryCache) FindBankHolidays(_ context.Context) ([]models.BankHoliday, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.holidays != nil && c.fresh(c.holidays.storedAt) {
		return slices.Clone(c.holidays.holidays), nil
	}
	return nil, sentinel.ErrNotFound
}

func (c *InMemoryCache) fresh(storedAt time.Time) bool {
	return c.now().Sub(storedAt) < c.cacheTTL
}
