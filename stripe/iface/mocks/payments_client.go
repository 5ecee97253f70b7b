package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jarodadam/active-topia-stripe-functions/stripe/domain"
)

type PaymentsClient struct {
	mock.Mock
}

func (m *PaymentsClient) ExchangeAuthorizationCode(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}

func (m *PaymentsClient) RetrieveAccount(ctx context.Context, accountID string) (*domain.LinkedAccount, error) {
	args := m.Called(ctx, accountID)

	var account *domain.LinkedAccount
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.LinkedAccount)
	}

	return account, args.Error(1)
}

func (m *PaymentsClient) ListCharges(ctx context.Context, accountID string, createdAfter, createdBefore int64, pageSize int64) ([]domain.ChargeRecord, error) {
	args := m.Called(ctx, accountID, createdAfter, createdBefore, pageSize)

	var charges []domain.ChargeRecord
	if args.Get(0) != nil {
		charges = args.Get(0).([]domain.ChargeRecord)
	}

	return charges, args.Error(1)
}

func (m *PaymentsClient) ListPayouts(ctx context.Context, accountID string, limit int64) ([]domain.PayoutSummary, error) {
	args := m.Called(ctx, accountID, limit)

	var payouts []domain.PayoutSummary
	if args.Get(0) != nil {
		payouts = args.Get(0).([]domain.PayoutSummary)
	}

	return payouts, args.Error(1)
}

func (m *PaymentsClient) GetBalance(ctx context.Context, accountID string) (*domain.BalanceSnapshot, error) {
	args := m.Called(ctx, accountID)

	var balance *domain.BalanceSnapshot
	if args.Get(0) != nil {
		balance = args.Get(0).(*domain.BalanceSnapshot)
	}

	return balance, args.Error(1)
}
