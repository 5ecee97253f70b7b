package service

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v74"

	"github.com/jarodadam/active-topia-stripe-functions/stripe/domain"
)

const defaultPageSize = 100

// ListCharges returns every charge created in [createdAfter, createdBefore],
// paging explicitly with the last charge id of each page as the cursor. The
// customer sub-record is expanded so aggregation can read email and creation
// time.
func (c *Client) ListCharges(ctx context.Context, accountID string, createdAfter, createdBefore int64, pageSize int64) ([]domain.ChargeRecord, error) {
	api, err := c.stripeAPI(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrChargesList, err)
	}

	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	var (
		out    []domain.ChargeRecord
		cursor string
	)

	for {
		params := &stripe.ChargeListParams{
			CreatedRange: &stripe.RangeQueryParams{
				GreaterThanOrEqual: createdAfter,
				LesserThanOrEqual:  createdBefore,
			},
		}
		params.Single = true
		params.Limit = stripe.Int64(pageSize)
		params.StripeAccount = stripe.String(accountID)
		params.AddExpand("data.customer")

		if cursor != "" {
			params.StartingAfter = stripe.String(cursor)
		}

		iter := api.Charges.List(params)

		var pageLen int

		for iter.Next() {
			ch := iter.Charge()
			out = append(out, chargeRecord(ch))
			cursor = ch.ID
			pageLen++
		}

		if err := iter.Err(); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrChargesList, err)
		}

		if !iter.Meta().HasMore || pageLen == 0 {
			break
		}
	}

	return out, nil
}

func chargeRecord(ch *stripe.Charge) domain.ChargeRecord {
	rec := domain.ChargeRecord{
		ID:             ch.ID,
		Amount:         ch.Amount,
		AmountRefunded: ch.AmountRefunded,
		Paid:           ch.Paid,
		Refunded:       ch.Refunded,
		Created:        ch.Created,
		Currency:       string(ch.Currency),
		Description:    ch.Description,
	}

	if ch.Customer != nil {
		rec.CustomerEmail = ch.Customer.Email
		rec.CustomerCreated = ch.Customer.Created
	}

	return rec
}

// ListPayouts returns up to limit recent payouts for the connected account.
func (c *Client) ListPayouts(ctx context.Context, accountID string, limit int64) ([]domain.PayoutSummary, error) {
	api, err := c.stripeAPI(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPayoutsList, err)
	}

	params := &stripe.PayoutListParams{}
	params.Single = true
	params.Limit = stripe.Int64(limit)
	params.StripeAccount = stripe.String(accountID)

	iter := api.Payouts.List(params)

	var out []domain.PayoutSummary

	for iter.Next() {
		p := iter.Payout()
		out = append(out, domain.PayoutSummary{
			ID:          p.ID,
			Amount:      p.Amount,
			Currency:    string(p.Currency),
			Status:      string(p.Status),
			ArrivalDate: p.ArrivalDate,
		})
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPayoutsList, err)
	}

	return out, nil
}

// GetBalance returns the connected account's current balance snapshot.
func (c *Client) GetBalance(ctx context.Context, accountID string) (*domain.BalanceSnapshot, error) {
	api, err := c.stripeAPI(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBalanceRetrieve, err)
	}

	params := &stripe.BalanceParams{}
	params.StripeAccount = stripe.String(accountID)

	balance, err := api.Balance.Get(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBalanceRetrieve, err)
	}

	snapshot := domain.BalanceSnapshot{
		Available: balanceAmounts(balance.Available),
		Pending:   balanceAmounts(balance.Pending),
	}

	return &snapshot, nil
}

func balanceAmounts(amounts []*stripe.Amount) []domain.BalanceAmount {
	out := make([]domain.BalanceAmount, 0, len(amounts))

	for _, a := range amounts {
		out = append(out, domain.BalanceAmount{
			Amount:   a.Amount,
			Currency: string(a.Currency),
		})
	}

	return out
}
