package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/jarodadam/active-topia-stripe-functions/framework/connection"
	"github.com/jarodadam/active-topia-stripe-functions/stripe/domain"
)

const connectedAccountsCollection = "stripeConnectedAccounts"

// ConnectedAccountsFirestore reads the authorization records from Firestore.
type ConnectedAccountsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewConnectedAccountsFirestore returns a new ConnectedAccountsFirestore with given project id.
func NewConnectedAccountsFirestore(ctx context.Context, projectID string) (*ConnectedAccountsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewConnectedAccountsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		}), nil
}

// NewConnectedAccountsFirestoreWithClient returns a new ConnectedAccountsFirestore using given client.
func NewConnectedAccountsFirestoreWithClient(fun connection.FirestoreFromContextFun) *ConnectedAccountsFirestore {
	return &ConnectedAccountsFirestore{
		firestoreClientFun: fun,
	}
}

// GetConnectedAccount returns the record matching both the user and the
// stripe account, or ErrConnectedAccountNotFound when no record exists.
func (d *ConnectedAccountsFirestore) GetConnectedAccount(ctx context.Context, userID, stripeAccountID string) (*domain.ConnectedAccount, error) {
	iter := d.firestoreClientFun(ctx).
		Collection(connectedAccountsCollection).
		Where("userId", "==", userID).
		Where("stripeAccountId", "==", stripeAccountID).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	docSnap, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrConnectedAccountNotFound
	}

	if err != nil {
		return nil, err
	}

	var account domain.ConnectedAccount
	if err := docSnap.DataTo(&account); err != nil {
		return nil, err
	}

	account.ID = docSnap.Ref.ID

	return &account, nil
}
