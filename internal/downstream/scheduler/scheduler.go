// Package scheduler reads prisons and candidate visit sessions from the visit
// scheduler.
package scheduler

import (
	"context"
	"net/url"

	"visitgate/internal/downstream"
)

// PrisonDto is the scheduler's view of a prison.
type PrisonDto struct {
	Code                string `json:"code"`
	Active              bool   `json:"active"`
	PolicyNoticeDaysMin int    `json:"policyNoticeDaysMin"`
	PolicyNoticeDaysMax int    `json:"policyNoticeDaysMax"`
}

// TimeSlotDto holds HH:MM times.
type TimeSlotDto struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// VisitSessionDto is one candidate session.
type VisitSessionDto struct {
	SessionDate              string      `json:"sessionDate"`
	SessionTemplateReference string      `json:"sessionTemplateReference"`
	SessionTimeSlot          TimeSlotDto `json:"sessionTimeSlot"`
	SessionRestriction       string      `json:"sessionRestriction"`
}

// SessionsParams are the available-sessions query parameters. Dates are
// YYYY-MM-DD.
type SessionsParams struct {
	PrisonCode                   string
	PrisonerID                   string
	SessionRestriction           string
	FromDate                     string
	ToDate                       string
	UserType                     string
	ExcludedApplicationReference string
}

type Client struct {
	http *downstream.Client
}

func New(http *downstream.Client) *Client {
	return &Client{http: http}
}

// GetPrison fetches booking policy for a prison.
func (c *Client) GetPrison(ctx context.Context, prisonCode string) (*PrisonDto, error) {
	var prison PrisonDto
	if err := c.http.GetJSON(ctx, "/admin/prisons/prison/"+url.PathEscape(prisonCode), nil, &prison); err != nil {
		return nil, err
	}
	return &prison, nil
}

// GetAvailableSessions fetches the candidate sessions for a window.
func (c *Client) GetAvailableSessions(ctx context.Context, p SessionsParams) ([]VisitSessionDto, error) {
	q := url.Values{}
	q.Set("prisonId", p.PrisonCode)
	q.Set("prisonerId", p.PrisonerID)
	q.Set("sessionRestriction", p.SessionRestriction)
	q.Set("fromDate", p.FromDate)
	q.Set("toDate", p.ToDate)
	if p.UserType != "" {
		q.Set("userType", p.UserType)
	}
	if p.ExcludedApplicationReference != "" {
		q.Set("excludedApplicationReference", p.ExcludedApplicationReference)
	}

	var sessions []VisitSessionDto
	if err := c.http.GetJSON(ctx, "/visit-sessions/available", q, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}
