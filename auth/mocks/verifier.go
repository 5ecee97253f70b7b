package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jarodadam/active-topia-stripe-functions/auth"
)

type Verifier struct {
	mock.Mock
}

func (m *Verifier) VerifyIDToken(ctx context.Context, idToken string) (*auth.Identity, error) {
	args := m.Called(ctx, idToken)

	var identity *auth.Identity
	if args.Get(0) != nil {
		identity = args.Get(0).(*auth.Identity)
	}

	return identity, args.Error(1)
}
