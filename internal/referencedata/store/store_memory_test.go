package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visitgate/internal/eligibility/models"
	"visitgate/pkg/platform/sentinel"
)

func TestInMemoryCachePrisonExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	cache := NewInMemoryCache(time.Hour)
	cache.now = func() time.Time { return now }

	_, err := cache.FindPrison(ctx, "HEI")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	require.NoError(t, cache.SavePrison(ctx, &models.PrisonPolicy{PrisonCode: "HEI", Active: true, PolicyNoticeDaysMin: 2, PolicyNoticeDaysMax: 28}))
	require.NoError(t, cache.SavePrison(ctx, nil))

	found, err := cache.FindPrison(ctx, "HEI")
	require.NoError(t, err)
	assert.Equal(t, 28, found.PolicyNoticeDaysMax)

	now = now.Add(time.Hour)
	_, err = cache.FindPrison(ctx, "HEI")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestInMemoryCacheBankHolidays(t *testing.T) {
	ctx := context.Background()
	cache := NewInMemoryCache(time.Hour)

	_, err := cache.FindBankHolidays(ctx)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	holidays := []models.BankHoliday{{Date: time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC), Title: "Good Friday"}}
	require.NoError(t, cache.SaveBankHolidays(ctx, holidays))

	found, err := cache.FindBankHolidays(ctx)
	require.NoError(t, err)
	assert.Equal(t, holidays, found)

	found[0].Title = "changed"
	again, err := cache.FindBankHolidays(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Good Friday", again[0].Title, "callers get a copy")
}
