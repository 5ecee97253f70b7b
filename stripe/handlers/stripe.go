package handlers

import (
	"github.com/jarodadam/active-topia-stripe-functions/framework/connection"
	"github.com/jarodadam/active-topia-stripe-functions/logger"
	"github.com/jarodadam/active-topia-stripe-functions/stripe/iface"
	"github.com/jarodadam/active-topia-stripe-functions/stripe/service"
)

// Stripe holds the handlers for the Connect onboarding and reporting routes.
type Stripe struct {
	loggerProvider logger.Provider
	service        iface.ConnectService
}

// NewStripe creates new stripe package handlers
func NewStripe(loggerProvider logger.Provider, conn *connection.Connection) *Stripe {
	return &Stripe{
		loggerProvider,
		service.NewConnectService(loggerProvider, conn),
	}
}
