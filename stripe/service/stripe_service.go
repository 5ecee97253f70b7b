package service

import (
	"github.com/jarodadam/active-topia-stripe-functions/framework/connection"
	"github.com/jarodadam/active-topia-stripe-functions/logger"
	"github.com/jarodadam/active-topia-stripe-functions/stripe/dal"
	"github.com/jarodadam/active-topia-stripe-functions/stripe/iface"
	"github.com/jarodadam/active-topia-stripe-functions/zapier/dispatch"
)

// ConnectService implements the Stripe Connect onboarding and reporting
// operations.
type ConnectService struct {
	loggerProvider logger.Provider
	payments       iface.PaymentsClient
	accountsDAL    dal.ConnectedAccounts
	dispatcher     dispatch.Dispatcher
}

func NewConnectService(loggerProvider logger.Provider, conn *connection.Connection) *ConnectService {
	return &ConnectService{
		loggerProvider: loggerProvider,
		payments:       NewStripeClient(),
		accountsDAL:    dal.NewConnectedAccountsFirestoreWithClient(conn.Firestore),
		dispatcher:     dispatch.NewRelayDispatcher(loggerProvider),
	}
}
