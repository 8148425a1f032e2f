package handler

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"visitgate/internal/eligibility"
	"visitgate/internal/eligibility/models"
	dErrors "visitgate/pkg/domain-errors"
	platformstrings "visitgate/pkg/platform/strings"
)

const maxVisitors = 30

// AvailableSessionsQuery is the query string of GET /visit-sessions/available.
type AvailableSessionsQuery struct {
	PrisonID                     string
	PrisonerID                   string
	SessionRestriction           string
	Visitors                     []string
	WithAppointmentsCheck        string
	ExcludedApplicationReference string
	UserType                     string
	AdvanceFromDateByDays        string
	FromDateOverride             string
	ToDateOverride               string

	// Parsed values (populated by Validate)
	parsed eligibility.AvailableSessionsRequest
}

// QueryFromValues reads the recognised parameters. visitors may repeat and
// each value may hold a comma separated list.
func QueryFromValues(v url.Values) *AvailableSessionsQuery {
	return &AvailableSessionsQuery{
		PrisonID:                     v.Get("prisonId"),
		PrisonerID:                   v.Get("prisonerId"),
		SessionRestriction:           v.Get("sessionRestriction"),
		Visitors:                     platformstrings.SplitList(v["visitors"]),
		WithAppointmentsCheck:        v.Get("withAppointmentsCheck"),
		ExcludedApplicationReference: v.Get("excludedApplicationReference"),
		UserType:                     v.Get("userType"),
		AdvanceFromDateByDays:        v.Get("pvbAdvanceFromDateByDays"),
		FromDateOverride:             v.Get("fromDateOverride"),
		ToDateOverride:               v.Get("toDateOverride"),
	}
}

// Validate validates and parses the query.
func (q *AvailableSessionsQuery) Validate() error {
	if q == nil {
		return dErrors.New(dErrors.CodeBadRequest, "query is required")
	}

	// Required fields
	q.PrisonID = strings.ToUpper(strings.TrimSpace(q.PrisonID))
	if q.PrisonID == "" {
		return dErrors.New(dErrors.CodeValidation, "prisonId is required")
	}
	q.PrisonerID = strings.ToUpper(strings.TrimSpace(q.PrisonerID))
	if q.PrisonerID == "" {
		return dErrors.New(dErrors.CodeValidation, "prisonerId is required")
	}

	req := eligibility.AvailableSessionsRequest{
		PrisonCode:                   q.PrisonID,
		PrisonerID:                   q.PrisonerID,
		ExcludedApplicationReference: strings.TrimSpace(q.ExcludedApplicationReference),
		UserType:                     models.UserTypeStaff,
	}

	if strings.TrimSpace(q.SessionRestriction) != "" {
		restriction, err := models.ParseSessionRestriction(q.SessionRestriction)
		if err != nil {
			return dErrors.New(dErrors.CodeValidation, "sessionRestriction must be OPEN or CLOSED")
		}
		req.SessionRestriction = restriction
	}

	if strings.TrimSpace(q.UserType) != "" {
		userType, err := models.ParseUserType(q.UserType)
		if err != nil {
			return dErrors.New(dErrors.CodeValidation, "userType must be STAFF or PUBLIC")
		}
		req.UserType = userType
	}

	visitors := platformstrings.DedupeAndTrim(q.Visitors)
	if len(visitors) > maxVisitors {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("at most %d visitors are allowed", maxVisitors))
	}
	for _, v := range visitors {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("invalid visitor id %q", v))
		}
		req.VisitorIDs = append(req.VisitorIDs, id)
	}
	if req.UserType == models.UserTypePublic && len(req.VisitorIDs) == 0 {
		return dErrors.New(dErrors.CodeValidation, "at least one visitor is required")
	}

	if v := strings.TrimSpace(q.WithAppointmentsCheck); v != "" {
		check, err := strconv.ParseBool(v)
		if err != nil {
			return dErrors.New(dErrors.CodeValidation, "withAppointmentsCheck must be true or false")
		}
		req.WithAppointmentsCheck = check
	}

	advance, err := optionalInt("pvbAdvanceFromDateByDays", q.AdvanceFromDateByDays)
	if err != nil {
		return err
	}
	if advance != nil {
		req.Overrides.AdvanceFromDateByDays = *advance
	}
	if req.Overrides.FromDateOverride, err = optionalInt("fromDateOverride", q.FromDateOverride); err != nil {
		return err
	}
	if req.Overrides.ToDateOverride, err = optionalInt("toDateOverride", q.ToDateOverride); err != nil {
		return err
	}

	q.parsed = req
	return nil
}

// Parsed returns the validated engine request.
func (q *AvailableSessionsQuery) Parsed() eligibility.AvailableSessionsRequest {
	return q.parsed
}

func optionalInt(name, raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeValidation, name+" must be a whole number of days")
	}
	return &n, nil
}
