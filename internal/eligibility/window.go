package eligibility

import (
	"time"

	"visitgate/internal/eligibility/models"
)

// WindowOverrides are optional client adjustments to the policy window.
// FromDateOverride and ToDateOverride are expressed in notice days, like the
// policy they adjust.
type WindowOverrides struct {
	FromDateOverride      *int
	ToDateOverride        *int
	AdvanceFromDateByDays int
}

// ComputeWindow derives the bookable window from prison policy.
//
// fromDate is today + min + 1 because sessions are offered after min whole
// days of notice. Overrides only ever narrow the window: a from override
// earlier than the policy minimum or beyond the policy maximum, and a to
// override outside (fromDate, today+max], are ignored. The result always satisfies
// fromDate <= toDate.
func ComputeWindow(policy models.PrisonPolicy, today time.Time, o WindowOverrides) models.DateRange {
	today = models.Day(today)
	minDays := max(policy.PolicyNoticeDaysMin, 0)

	policyTo := today.AddDate(0, 0, policy.PolicyNoticeDaysMax)

	from := today.AddDate(0, 0, minDays+1)
	if o.FromDateOverride != nil && *o.FromDateOverride > minDays {
		if candidate := today.AddDate(0, 0, *o.FromDateOverride+1); !candidate.After(policyTo) {
			from = candidate
		}
	}

	to := policyTo
	if o.ToDateOverride != nil {
		candidate := today.AddDate(0, 0, *o.ToDateOverride)
		if candidate.After(from) && !candidate.After(policyTo) {
			to = candidate
		}
	}

	window := models.NewDateRange(from, to)

	if o.AdvanceFromDateByDays > 0 {
		advanced := window.From.AddDate(0, 0, o.AdvanceFromDateByDays)
		if advanced.After(window.To) {
			advanced = window.To
		}
		window.From = advanced
	}
	return window
}
