package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/jarodadam/active-topia-stripe-functions/stripe/dal"
	"github.com/jarodadam/active-topia-stripe-functions/stripe/domain"
)

const recentItemsLimit = 10

// BuildReport authorizes the caller against the connected-accounts store and
// aggregates the account's charge ledger over the month-to-date and
// year-to-date windows. The authorization check runs before any Stripe call.
func (s *ConnectService) BuildReport(ctx context.Context, userID, accountID string) (*domain.Report, error) {
	if accountID == "" {
		return nil, ErrMissingAccountID
	}

	if _, err := s.accountsDAL.GetConnectedAccount(ctx, userID, accountID); err != nil {
		if errors.Is(err, dal.ErrConnectedAccountNotFound) {
			return nil, ErrAccountForbidden
		}

		return nil, err
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).Unix()
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC).Unix()

	// Each window is fetched independently, the YTD superset is not reused.
	mtdCharges, err := s.payments.ListCharges(ctx, accountID, monthStart, now.Unix(), defaultPageSize)
	if err != nil {
		return nil, err
	}

	ytdCharges, err := s.payments.ListCharges(ctx, accountID, yearStart, now.Unix(), defaultPageSize)
	if err != nil {
		return nil, err
	}

	mtd := domain.AggregateWindow(mtdCharges)
	mtd.NewCustomers = domain.NewCustomers(mtdCharges, monthStart)

	ytd := domain.AggregateWindow(ytdCharges)
	ytd.TotalCustomers = domain.DistinctCustomers(ytdCharges)

	// Historical formula: mixes the YTD customer total with the MTD new
	// count. Kept as observed pending product confirmation.
	mtd.ReturningCustomers = ytd.TotalCustomers - mtd.NewCustomers

	payouts, err := s.payments.ListPayouts(ctx, accountID, recentItemsLimit)
	if err != nil {
		return nil, err
	}

	balance, err := s.payments.GetBalance(ctx, accountID)
	if err != nil {
		return nil, err
	}

	report := domain.Report{
		StripeAccountID: accountID,
		ReportDate:      now.Format("2006-01-02"),
		MTD:             mtd,
		YTD:             ytd,
		RecentCharges:   recentCharges(mtdCharges, recentItemsLimit),
		RecentPayouts:   payouts,
		Balance:         *balance,
	}

	return &report, nil
}

// recentCharges returns the n newest charges by creation time.
func recentCharges(charges []domain.ChargeRecord, n int) []domain.ChargeRecord {
	sorted := make([]domain.ChargeRecord, len(charges))
	copy(sorted, charges)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Created > sorted[j].Created
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}

	return sorted
}
