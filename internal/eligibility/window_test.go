package eligibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"visitgate/internal/eligibility/models"
)

func date(s string) time.Time {
	d, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func intPtr(v int) *int { return &v }

func TestComputeWindow(t *testing.T) {
	today := date("2026-03-02")
	policy := models.PrisonPolicy{PrisonCode: "HEI", Active: true, PolicyNoticeDaysMin: 2, PolicyNoticeDaysMax: 28}

	tests := []struct {
		name     string
		policy   models.PrisonPolicy
		override WindowOverrides
		wantFrom string
		wantTo   string
	}{
		{
			name:     "policy defaults",
			policy:   policy,
			wantFrom: "2026-03-05",
			wantTo:   "2026-03-30",
		},
		{
			name:     "from override later than minimum is applied",
			policy:   policy,
			override: WindowOverrides{FromDateOverride: intPtr(5)},
			wantFrom: "2026-03-08",
			wantTo:   "2026-03-30",
		},
		{
			name:     "from override earlier than minimum is ignored",
			policy:   policy,
			override: WindowOverrides{FromDateOverride: intPtr(1)},
			wantFrom: "2026-03-05",
			wantTo:   "2026-03-30",
		},
		{
			name:     "from override equal to minimum is ignored",
			policy:   policy,
			override: WindowOverrides{FromDateOverride: intPtr(2)},
			wantFrom: "2026-03-05",
			wantTo:   "2026-03-30",
		},
		{
			name:     "negative from override is ignored",
			policy:   policy,
			override: WindowOverrides{FromDateOverride: intPtr(-4)},
			wantFrom: "2026-03-05",
			wantTo:   "2026-03-30",
		},
		{
			name:     "from override beyond maximum is ignored",
			policy:   policy,
			override: WindowOverrides{FromDateOverride: intPtr(40)},
			wantFrom: "2026-03-05",
			wantTo:   "2026-03-30",
		},
		{
			name:     "to override inside band is applied",
			policy:   policy,
			override: WindowOverrides{ToDateOverride: intPtr(14)},
			wantFrom: "2026-03-05",
			wantTo:   "2026-03-16",
		},
		{
			name:     "to override equal to maximum is applied",
			policy:   policy,
			override: WindowOverrides{ToDateOverride: intPtr(28)},
			wantFrom: "2026-03-05",
			wantTo:   "2026-03-30",
		},
		{
			name:     "to override beyond maximum is ignored",
			policy:   policy,
			override: WindowOverrides{ToDateOverride: intPtr(60)},
			wantFrom: "2026-03-05",
			wantTo:   "2026-03-30",
		},
		{
			name:     "to override at or before from date is ignored",
			policy:   policy,
			override: WindowOverrides{ToDateOverride: intPtr(3)},
			wantFrom: "2026-03-05",
			wantTo:   "2026-03-30",
		},
		{
			name:     "advance shifts from date",
			policy:   policy,
			override: WindowOverrides{AdvanceFromDateByDays: 4},
			wantFrom: "2026-03-09",
			wantTo:   "2026-03-30",
		},
		{
			name:     "advance is clamped to to date",
			policy:   policy,
			override: WindowOverrides{AdvanceFromDateByDays: 100},
			wantFrom: "2026-03-30",
			wantTo:   "2026-03-30",
		},
		{
			name:     "advance landing exactly on to date gives a single day",
			policy:   policy,
			override: WindowOverrides{AdvanceFromDateByDays: 25},
			wantFrom: "2026-03-30",
			wantTo:   "2026-03-30",
		},
		{
			name:     "non-positive advance is ignored",
			policy:   policy,
			override: WindowOverrides{AdvanceFromDateByDays: -3},
			wantFrom: "2026-03-05",
			wantTo:   "2026-03-30",
		},
		{
			name:     "maximum inside minimum collapses to from date",
			policy:   models.PrisonPolicy{PolicyNoticeDaysMin: 5, PolicyNoticeDaysMax: 3},
			wantFrom: "2026-03-08",
			wantTo:   "2026-03-08",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeWindow(tt.policy, today.Add(10*time.Hour), tt.override)
			assert.Equal(t, date(tt.wantFrom), got.From)
			assert.Equal(t, date(tt.wantTo), got.To)
		})
	}
}

func TestComputeWindowBounds(t *testing.T) {
	today := date("2026-03-02")
	for minDays := 0; minDays <= 10; minDays++ {
		for maxDays := 0; maxDays <= 40; maxDays += 3 {
			for advance := -2; advance <= 45; advance += 7 {
				policy := models.PrisonPolicy{PolicyNoticeDaysMin: minDays, PolicyNoticeDaysMax: maxDays}
				w := ComputeWindow(policy, today, WindowOverrides{AdvanceFromDateByDays: advance})

				assert.False(t, w.From.After(w.To), "min=%d max=%d advance=%d", minDays, maxDays, advance)
				assert.False(t, w.From.Before(today.AddDate(0, 0, minDays+1)), "min=%d max=%d advance=%d", minDays, maxDays, advance)
			}
		}
	}
}
