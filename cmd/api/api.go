package api

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/jarodadam/active-topia-stripe-functions/auth"
	"github.com/jarodadam/active-topia-stripe-functions/framework/connection"
	"github.com/jarodadam/active-topia-stripe-functions/framework/mid"
	"github.com/jarodadam/active-topia-stripe-functions/framework/web"
	"github.com/jarodadam/active-topia-stripe-functions/logger"
	stripeHandlers "github.com/jarodadam/active-topia-stripe-functions/stripe/handlers"
)

// API constructs the http.Handler with all application routes defined.
type API struct {
	shutdown chan os.Signal
	logging  *logger.Logging
	conn     *connection.Connection
	verifier auth.Verifier
}

func NewAPI(ctx context.Context, shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection) (*API, error) {
	verifier, err := auth.NewFirebaseVerifier(ctx)
	if err != nil {
		return nil, err
	}

	return &API{
		shutdown: shutdown,
		logging:  logging,
		conn:     conn,
		verifier: verifier,
	}, nil
}

// Build wires the handlers into the web.App with the middleware chain.
func (a *API) Build() *web.App {
	app := web.NewApp(a.shutdown, a.conn, mid.Logger(), mid.Errors(), mid.Panics(), mid.Sentry())

	app.Get("/health", func(ctx *gin.Context) error {
		return web.Respond(ctx, nil, http.StatusOK)
	})

	loggerProvider := a.logging.Logger

	stripe := stripeHandlers.NewStripe(loggerProvider, a.conn)

	stripeGroup := web.NewGroup(app, "/stripe")
	stripeGroup.Get("/onboarding", stripe.StartOnboarding)
	stripeGroup.Get("/oauth/callback", stripe.OAuthCallback)
	stripeGroup.Post("/reports", stripe.GetReports, mid.Auth(a.verifier))

	return app
}
