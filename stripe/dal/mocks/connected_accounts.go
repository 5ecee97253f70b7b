package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jarodadam/active-topia-stripe-functions/stripe/domain"
)

type ConnectedAccounts struct {
	mock.Mock
}

func (m *ConnectedAccounts) GetConnectedAccount(ctx context.Context, userID, stripeAccountID string) (*domain.ConnectedAccount, error) {
	args := m.Called(ctx, userID, stripeAccountID)

	var account *domain.ConnectedAccount
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.ConnectedAccount)
	}

	return account, args.Error(1)
}
