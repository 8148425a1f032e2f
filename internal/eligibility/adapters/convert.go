package adapters

import (
	"fmt"
	"strings"
	"time"

	"visitgate/internal/eligibility/models"
	dErrors "visitgate/pkg/domain-errors"
)

// badData reports a downstream payload we could not interpret.
func badData(service string, err error) error {
	return dErrors.Wrap(err, dErrors.CodeBadGateway, service+" returned malformed data")
}

func parseDate(s string) (time.Time, error) {
	// Some services send local date-times where a date is meant.
	if i := strings.IndexByte(s, 'T'); i > 0 {
		s = s[:i]
	}
	return models.ParseDate(s)
}

func parseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

var clockLayouts = []string{"2006-01-02T15:04:05", "2006-01-02T15:04"}

// parseOptionalClock accepts HH:MM[:SS] or a local date-time. Empty means no
// time was given.
func parseOptionalClock(s string) (*models.Clock, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if c, err := models.ParseClock(s); err == nil {
		return &c, nil
	}
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			c := models.ClockOf(t)
			return &c, nil
		}
	}
	return nil, fmt.Errorf("invalid time %q", s)
}

func formatDate(t time.Time) string {
	return t.Format(models.DateLayout)
}
