// Package contacts reads visitor restrictions from the prisoner contact
// registry.
package contacts

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"visitgate/internal/downstream"
)

// DateRangeDto holds YYYY-MM-DD bounds.
type DateRangeDto struct {
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
}

type hasClosedResponse struct {
	Value bool `json:"value"`
}

type Client struct {
	http *downstream.Client
}

func New(http *downstream.Client) *Client {
	return &Client{http: http}
}

func basePath(prisonerID string) string {
	return "/v2/prisoners/" + url.PathEscape(prisonerID) + "/contacts/restrictions"
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

// GetBannedDateRange returns the part of fromDate..toDate in which no visitor
// is banned. The registry answers 404 when no such range exists, reported
// here as nil.
func (c *Client) GetBannedDateRange(ctx context.Context, prisonerID string, visitorIDs []int64, fromDate, toDate string) (*DateRangeDto, error) {
	q := url.Values{}
	q.Set("visitors", joinIDs(visitorIDs))
	q.Set("fromDate", fromDate)
	q.Set("toDate", toDate)

	var r DateRangeDto
	if err := c.http.GetJSON(ctx, basePath(prisonerID)+"/banned/dateRange", q, &r); err != nil {
		if downstream.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

// GetRestrictionDateRanges returns the date ranges in which any visitor holds
// one of restrictionTypes.
func (c *Client) GetRestrictionDateRanges(ctx context.Context, prisonerID string, visitorIDs []int64, restrictionTypes []string, fromDate, toDate string) ([]DateRangeDto, error) {
	q := url.Values{}
	q.Set("visitors", joinIDs(visitorIDs))
	q.Set("restrictionTypes", strings.Join(restrictionTypes, ","))
	q.Set("fromDate", fromDate)
	q.Set("toDate", toDate)

	var ranges []DateRangeDto
	if err := c.http.GetJSON(ctx, basePath(prisonerID)+"/visit-request/date-ranges", q, &ranges); err != nil {
		return nil, err
	}
	return ranges, nil
}

// HasClosedRestriction reports whether any visitor has a closed restriction.
func (c *Client) HasClosedRestriction(ctx context.Context, prisonerID string, visitorIDs []int64) (bool, error) {
	q := url.Values{}
	q.Set("visitors", joinIDs(visitorIDs))

	var r hasClosedResponse
	if err := c.http.GetJSON(ctx, basePath(prisonerID)+"/closed", q, &r); err != nil {
		return false, err
	}
	return r.Value, nil
}
