// Package bankholidays reads the published UK bank holiday calendar.
package bankholidays

import (
	"context"

	"visitgate/internal/downstream"
)

// Division is the calendar prisons in scope follow.
const Division = "england-and-wales"

type EventDto struct {
	Title string `json:"title"`
	Date  string `json:"date"`
}

type divisionDto struct {
	Division string     `json:"division"`
	Events   []EventDto `json:"events"`
}

type Client struct {
	http *downstream.Client
}

func New(http *downstream.Client) *Client {
	return &Client{http: http}
}

// GetBankHolidays returns every published holiday for Division.
func (c *Client) GetBankHolidays(ctx context.Context) ([]EventDto, error) {
	var calendar map[string]divisionDto
	if err := c.http.GetJSON(ctx, "/bank-holidays.json", nil, &calendar); err != nil {
		return nil, err
	}
	return calendar[Division].Events, nil
}
