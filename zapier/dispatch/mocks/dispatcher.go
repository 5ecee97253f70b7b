package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jarodadam/active-topia-stripe-functions/zapier/domain"
)

type Dispatcher struct {
	mock.Mock
}

func (m *Dispatcher) DispatchAccountConnected(ctx context.Context, payload *domain.AccountConnectedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
