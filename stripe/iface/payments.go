package iface

import (
	"context"

	"github.com/jarodadam/active-topia-stripe-functions/stripe/domain"
)

// PaymentsClient wraps the Stripe endpoints this subsystem consumes. All
// account-scoped calls carry the connected account id, never the platform
// account.
//
//go:generate mockery --name PaymentsClient --output ./mocks
type PaymentsClient interface {
	ExchangeAuthorizationCode(ctx context.Context, code string) (string, error)
	RetrieveAccount(ctx context.Context, accountID string) (*domain.LinkedAccount, error)
	ListCharges(ctx context.Context, accountID string, createdAfter, createdBefore int64, pageSize int64) ([]domain.ChargeRecord, error)
	ListPayouts(ctx context.Context, accountID string, limit int64) ([]domain.PayoutSummary, error)
	GetBalance(ctx context.Context, accountID string) (*domain.BalanceSnapshot, error)
}
