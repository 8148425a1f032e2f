// Package prisonapi reads offender restrictions from the prison API.
package prisonapi

import (
	"context"
	"net/url"

	"visitgate/internal/downstream"
)

type OffenderRestrictionDto struct {
	RestrictionType string `json:"restrictionType"`
	StartDate       string `json:"startDate"`
	ExpiryDate      string `json:"expiryDate,omitempty"`
}

type offenderRestrictionsResponse struct {
	OffenderRestrictions []OffenderRestrictionDto `json:"offenderRestrictions"`
}

type Client struct {
	http *downstream.Client
}

func New(http *downstream.Client) *Client {
	return &Client{http: http}
}

// GetOffenderRestrictions returns the prisoner's active restrictions.
func (c *Client) GetOffenderRestrictions(ctx context.Context, prisonerID string) ([]OffenderRestrictionDto, error) {
	q := url.Values{}
	q.Set("activeRestrictionsOnly", "true")

	var resp offenderRestrictionsResponse
	path := "/api/offenders/" + url.PathEscape(prisonerID) + "/offender-restrictions"
	if err := c.http.GetJSON(ctx, path, q, &resp); err != nil {
		return nil, err
	}
	return resp.OffenderRestrictions, nil
}
