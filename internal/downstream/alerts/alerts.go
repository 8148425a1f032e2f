// Package alerts reads prisoner alerts from the alerts service.
package alerts

import (
	"context"
	"net/url"

	"visitgate/internal/downstream"
)

type AlertCodeDto struct {
	Code string `json:"code"`
}

type AlertDto struct {
	AlertCode  AlertCodeDto `json:"alertCode"`
	ActiveFrom string       `json:"activeFrom"`
	ActiveTo   string       `json:"activeTo,omitempty"`
	IsActive   bool         `json:"isActive"`
}

type alertsPage struct {
	Content []AlertDto `json:"content"`
}

type Client struct {
	http *downstream.Client
}

func New(http *downstream.Client) *Client {
	return &Client{http: http}
}

// GetActiveAlerts returns the prisoner's active alerts.
func (c *Client) GetActiveAlerts(ctx context.Context, prisonerID string) ([]AlertDto, error) {
	q := url.Values{}
	q.Set("isActive", "true")

	var page alertsPage
	if err := c.http.GetJSON(ctx, "/prisoners/"+url.PathEscape(prisonerID)+"/alerts", q, &page); err != nil {
		return nil, err
	}
	return page.Content, nil
}
