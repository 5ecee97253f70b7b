package iface

import (
	"context"

	"github.com/jarodadam/active-topia-stripe-functions/stripe/domain"
)

//go:generate mockery --name ConnectService --output ./mocks
type ConnectService interface {
	BuildAuthorizationURL(ctx context.Context, userID, successURL, failureURL string) (string, error)
	HandleOAuthCallback(ctx context.Context, code, rawState string) domain.RedirectOutcome
	BuildReport(ctx context.Context, userID, accountID string) (*domain.Report, error)
}
