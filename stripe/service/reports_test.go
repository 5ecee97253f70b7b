package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jarodadam/active-topia-stripe-functions/stripe/dal"
	dalMocks "github.com/jarodadam/active-topia-stripe-functions/stripe/dal/mocks"
	"github.com/jarodadam/active-topia-stripe-functions/stripe/domain"
	"github.com/jarodadam/active-topia-stripe-functions/stripe/iface/mocks"
)

func TestBuildReportMissingAccountID(t *testing.T) {
	s := &ConnectService{loggerProvider: testLoggerProvider}

	_, err := s.BuildReport(context.Background(), "user-1", "")
	assert.ErrorIs(t, err, ErrMissingAccountID)
}

func TestBuildReportForbidden(t *testing.T) {
	accounts := &dalMocks.ConnectedAccounts{}
	accounts.On("GetConnectedAccount", mock.Anything, "user-1", "acct_9").
		Return(nil, dal.ErrConnectedAccountNotFound)

	payments := &mocks.PaymentsClient{}

	s := &ConnectService{
		loggerProvider: testLoggerProvider,
		payments:       payments,
		accountsDAL:    accounts,
	}

	_, err := s.BuildReport(context.Background(), "user-1", "acct_9")
	assert.ErrorIs(t, err, ErrAccountForbidden)

	payments.AssertNotCalled(t, "ListCharges", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	accounts.AssertExpectations(t)
}

func TestBuildReportStoreError(t *testing.T) {
	storeErr := errors.New("firestore unavailable")

	accounts := &dalMocks.ConnectedAccounts{}
	accounts.On("GetConnectedAccount", mock.Anything, "user-1", "acct_9").
		Return(nil, storeErr)

	s := &ConnectService{
		loggerProvider: testLoggerProvider,
		accountsDAL:    accounts,
	}

	_, err := s.BuildReport(context.Background(), "user-1", "acct_9")
	assert.ErrorIs(t, err, storeErr)
}

func TestBuildReport(t *testing.T) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).Unix()
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC).Unix()

	mtdCharges := []domain.ChargeRecord{
		{ID: "ch_1", Amount: 1000, Paid: true, Created: monthStart + 10, CustomerEmail: "new@example.com", CustomerCreated: monthStart + 5},
		{ID: "ch_2", Amount: 500, Paid: true, Refunded: true, AmountRefunded: 500, Created: monthStart + 20, CustomerEmail: "old@example.com", CustomerCreated: yearStart - 100},
	}
	ytdCharges := append([]domain.ChargeRecord{
		{ID: "ch_0", Amount: 2000, Paid: true, Created: yearStart + 10, CustomerEmail: "old@example.com", CustomerCreated: yearStart - 100},
		{ID: "ch_x", Amount: 700, Paid: true, Created: yearStart + 20, CustomerEmail: "third@example.com", CustomerCreated: yearStart - 50},
	}, mtdCharges...)

	payouts := []domain.PayoutSummary{{ID: "po_1", Amount: 900, Currency: "usd", Status: "paid"}}
	balance := &domain.BalanceSnapshot{
		Available: []domain.BalanceAmount{{Amount: 4000, Currency: "usd"}},
	}

	accounts := &dalMocks.ConnectedAccounts{}
	accounts.On("GetConnectedAccount", mock.Anything, "user-1", "acct_9").
		Return(&domain.ConnectedAccount{ID: "doc-1", UserID: "user-1", StripeAccountID: "acct_9"}, nil)

	payments := &mocks.PaymentsClient{}
	payments.On("ListCharges", mock.Anything, "acct_9", monthStart, mock.Anything, int64(defaultPageSize)).
		Return(mtdCharges, nil).Once()
	payments.On("ListCharges", mock.Anything, "acct_9", yearStart, mock.Anything, int64(defaultPageSize)).
		Return(ytdCharges, nil).Once()
	payments.On("ListPayouts", mock.Anything, "acct_9", int64(recentItemsLimit)).
		Return(payouts, nil)
	payments.On("GetBalance", mock.Anything, "acct_9").
		Return(balance, nil)

	s := &ConnectService{
		loggerProvider: testLoggerProvider,
		payments:       payments,
		accountsDAL:    accounts,
	}

	report, err := s.BuildReport(context.Background(), "user-1", "acct_9")
	require.NoError(t, err)

	assert.Equal(t, "acct_9", report.StripeAccountID)
	assert.Equal(t, now.Format("2006-01-02"), report.ReportDate)

	assert.Equal(t, int64(1000), report.MTD.Revenue)
	assert.Equal(t, 2, report.MTD.Transactions)
	assert.Equal(t, int64(500), report.MTD.RefundsAmount)
	assert.Equal(t, float64(500), report.MTD.AverageTransactionValue)
	assert.Equal(t, 1, report.MTD.NewCustomers)
	assert.Equal(t, int64(0), report.MTD.Fees)

	assert.Equal(t, int64(3700), report.YTD.Revenue)
	assert.Equal(t, 4, report.YTD.Transactions)
	assert.Equal(t, 3, report.YTD.TotalCustomers)

	assert.Equal(t, report.YTD.TotalCustomers-report.MTD.NewCustomers, report.MTD.ReturningCustomers)

	require.Len(t, report.RecentCharges, 2)
	assert.Equal(t, "ch_2", report.RecentCharges[0].ID)
	assert.Equal(t, "ch_1", report.RecentCharges[1].ID)

	assert.Equal(t, payouts, report.RecentPayouts)
	assert.Equal(t, *balance, report.Balance)

	payments.AssertExpectations(t)
	accounts.AssertExpectations(t)
}

func TestRecentChargesCapsAndSorts(t *testing.T) {
	charges := make([]domain.ChargeRecord, 0, 15)
	for i := 0; i < 15; i++ {
		charges = append(charges, domain.ChargeRecord{ID: string(rune('a' + i)), Created: int64(i)})
	}

	recent := recentCharges(charges, 10)

	require.Len(t, recent, 10)
	assert.Equal(t, int64(14), recent[0].Created)
	assert.Equal(t, int64(5), recent[9].Created)
}
