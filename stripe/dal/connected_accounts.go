package dal

import (
	"context"
	"errors"

	"github.com/jarodadam/active-topia-stripe-functions/stripe/domain"
)

var ErrConnectedAccountNotFound = errors.New("connected account not found")

// ConnectedAccounts is the read-only authorization store tying Adalo users
// to the Stripe accounts they may view. Records are written by the relay,
// never by this service.
//
//go:generate mockery --name ConnectedAccounts --output ./mocks
type ConnectedAccounts interface {
	GetConnectedAccount(ctx context.Context, userID, stripeAccountID string) (*domain.ConnectedAccount, error)
}
