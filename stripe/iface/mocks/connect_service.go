package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jarodadam/active-topia-stripe-functions/stripe/domain"
)

type ConnectService struct {
	mock.Mock
}

func (m *ConnectService) BuildAuthorizationURL(ctx context.Context, userID, successURL, failureURL string) (string, error) {
	args := m.Called(ctx, userID, successURL, failureURL)
	return args.String(0), args.Error(1)
}

func (m *ConnectService) HandleOAuthCallback(ctx context.Context, code, rawState string) domain.RedirectOutcome {
	args := m.Called(ctx, code, rawState)
	return args.Get(0).(domain.RedirectOutcome)
}

func (m *ConnectService) BuildReport(ctx context.Context, userID, accountID string) (*domain.Report, error) {
	args := m.Called(ctx, userID, accountID)

	var report *domain.Report
	if args.Get(0) != nil {
		report = args.Get(0).(*domain.Report)
	}

	return report, args.Error(1)
}
