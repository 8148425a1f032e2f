package adapters

import (
	"context"

	"visitgate/internal/downstream"
	"visitgate/internal/downstream/bankholidays"
	"visitgate/internal/eligibility/models"
)

// BankHolidaysAdapter lists the full published holiday calendar. Window
// filtering and caching happen in the reference-data service.
type BankHolidaysAdapter struct {
	client *bankholidays.Client
}

func NewBankHolidaysAdapter(client *bankholidays.Client) *BankHolidaysAdapter {
	return &BankHolidaysAdapter{client: client}
}

func (a *BankHolidaysAdapter) ListBankHolidays(ctx context.Context) ([]models.BankHoliday, error) {
	dtos, err := a.client.GetBankHolidays(ctx)
	if err != nil {
		return nil, downstream.ToDomainError(err)
	}

	out := make([]models.BankHoliday, 0, len(dtos))
	for _, dto := range dtos {
		d, err := parseDate(dto.Date)
		if err != nil {
			return nil, badData("bank-holidays", err)
		}
		out = append(out, models.BankHoliday{Date: d, Title: dto.Title})
	}
	return out, nil
}
