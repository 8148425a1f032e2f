package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"visitgate/internal/eligibility/models"
	"visitgate/pkg/platform/sentinel"
)

const (
	prisonKeyPrefix = "visitgate:prison:"
	holidaysKey     = "visitgate:bank-holidays"
)

type prisonRecord struct {
	Code                string `json:"code"`
	Active              bool   `json:"active"`
	PolicyNoticeDaysMin int    `json:"policyNoticeDaysMin"`
	PolicyNoticeDaysMax int    `json:"policyNoticeDaysMax"`
}

type holidayRecord struct {
	Date  string `json:"date"`
	Title string `json:"title"`
}

// RedisCache shares reference data between instances. Entries expire via
// Redis TTLs.
type RedisCache struct {
	client   *redis.Client
	cacheTTL time.Duration
}

func NewRedisCache(client *redis.Client, cacheTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, cacheTTL: cacheTTL}
}

func (c *RedisCache) SavePrison(ctx context.Context, policy *models.PrisonPolicy) error {
	if policy == nil {
		return nil
	}
	payload, err := json.Marshal(prisonRecord{
		Code:                policy.PrisonCode,
		Active:              policy.Active,
		PolicyNoticeDaysMin: policy.PolicyNoticeDaysMin,
		PolicyNoticeDaysMax: policy.PolicyNoticeDaysMax,
	})
	if err != nil {
		return fmt.Errorf("encode prison: %w", err)
	}
	return c.client.Set(ctx, prisonKeyPrefix+policy.PrisonCode, payload, c.cacheTTL).Err()
}

func (c *RedisCache) FindPrison(ctx context.Context, prisonCode string) (*models.PrisonPolicy, error) {
	raw, err := c.client.Get(ctx, prisonKeyPrefix+prisonCode).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get prison: %v", sentinel.ErrUnavailable, err)
	}
	var rec prisonRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode prison: %w", err)
	}
	return &models.PrisonPolicy{
		PrisonCode:          rec.Code,
		Active:              rec.Active,
		PolicyNoticeDaysMin: rec.PolicyNoticeDaysMin,
		PolicyNoticeDaysMax: rec.PolicyNoticeDaysMax,
	}, nil
}

func (c *RedisCache) SaveBankHolidays(ctx context.Context, holidays []models.BankHoliday) error {
	records := make([]holidayRecord, len(holidays))
	for i, h := range holidays {
		records[i] = holidayRecord{Date: h.Date.Format(models.DateLayout), Title: h.Title}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode bank holidays: %w", err)
	}
	return c.client.Set(ctx, holidaysKey, payload, c.cacheTTL).Err()
}

func (c *RedisCache) FindBankHolidays(ctx context.Context) ([]models.BankHoliday, error) {
	raw, err := c.client.Get(ctx, holidaysKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get bank holidays: %v", sentinel.ErrUnavailable, err)
	}
	var records []holidayRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode bank holidays: %w", err)
	}
	out := make([]models.BankHoliday, 0, len(records))
	for _, r := range records {
		d, err := models.ParseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("decode bank holidays: %w", err)
		}
		out = append(out, models.BankHoliday{Date: d, Title: r.Title})
	}
	return out, nil
}
