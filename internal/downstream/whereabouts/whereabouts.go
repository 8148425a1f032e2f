// Package whereabouts reads scheduled prisoner events.
package whereabouts

import (
	"context"
	"net/url"

	"visitgate/internal/downstream"
)

// ScheduledEventDto is one scheduled event. Times are either HH:MM[:SS] or a
// full local date-time; a missing time means the event lasts all day.
type ScheduledEventDto struct {
	EventType    string `json:"eventType"`
	EventSubType string `json:"eventSubType"`
	EventDate    string `json:"eventDate"`
	StartTime    string `json:"startTime,omitempty"`
	EndTime      string `json:"endTime,omitempty"`
}

type Client struct {
	http *downstream.Client
}

func New(http *downstream.Client) *Client {
	return &Client{http: http}
}

// GetScheduledEvents returns the prisoner's events between the two dates.
func (c *Client) GetScheduledEvents(ctx context.Context, prisonerID, fromDate, toDate string) ([]ScheduledEventDto, error) {
	q := url.Values{}
	q.Set("prisonerId", prisonerID)
	q.Set("fromDate", fromDate)
	q.Set("toDate", toDate)

	var events []ScheduledEventDto
	if err := c.http.GetJSON(ctx, "/scheduled-events", q, &events); err != nil {
		return nil, err
	}
	return events, nil
}
