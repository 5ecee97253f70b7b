package service

import (
	"context"

	"github.com/jarodadam/active-topia-stripe-functions/stripe/domain"
	zapierDomain "github.com/jarodadam/active-topia-stripe-functions/zapier/domain"
)

const (
	exchangeFailedMessage   = "Stripe connection failed."
	unexpectedErrorMessage  = "An unexpected error occurred."
	missingCodeErrorMessage = "Missing authorization code."
)

// HandleOAuthCallback runs the single-pass onboarding state machine. Every
// exit path, faults included, produces a RedirectOutcome so the browser is
// always sent somewhere sensible, never an error body mid-navigation.
func (s *ConnectService) HandleOAuthCallback(ctx context.Context, code, rawState string) (outcome domain.RedirectOutcome) {
	log := s.loggerProvider(ctx)

	state := domain.DecodeState(rawState)

	// A panic mid-flow must still land the browser on a failure page,
	// never a JSON 500 mid-navigation.
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("oauth callback panicked for user %s: %v", state.UserID, r)
			outcome = domain.FailureRedirect(state.FailureURL, unexpectedErrorMessage)
		}
	}()

	if code == "" {
		log.Errorf("oauth callback arrived without an authorization code")
		return domain.FailureRedirect(domain.FallbackFailureURL, missingCodeErrorMessage)
	}

	if state.Variant != domain.StateStructured {
		log.Warningf("state parameter decoded as variant %d, user %s", state.Variant, state.UserID)
	}

	accountID, err := s.payments.ExchangeAuthorizationCode(ctx, code)
	if err != nil {
		log.Errorf("oauth code exchange failed for user %s: %s", state.UserID, err)
		return domain.FailureRedirect(state.FailureURL, exchangeFailedMessage)
	}

	account, err := s.payments.RetrieveAccount(ctx, accountID)
	if err != nil {
		log.Errorf("account retrieve failed for %s: %s", accountID, err)
		return domain.FailureRedirect(state.FailureURL, unexpectedErrorMessage)
	}

	// Relay failure must never block the user-facing redirect; the zap
	// reconciles missed events on its own schedule.
	payload := zapierDomain.AccountConnectedPayload{
		AdaloUserID:         state.UserID,
		StripeUserID:        account.StripeUserID,
		ChargesEnabled:      account.ChargesEnabled,
		PayoutsEnabled:      account.PayoutsEnabled,
		AccountStatus:       zapierDomain.AccountStatusActive,
		BusinessName:        account.BusinessName,
		BusinessAddress:     account.BusinessAddress,
		BusinessPhone:       account.BusinessPhone,
		BusinessWebsite:     account.BusinessWebsite,
		BusinessDescription: account.BusinessDescription,
		LegalEntityType:     account.LegalEntityType,
		AccountEmail:        account.Email,
	}

	if err := s.dispatcher.DispatchAccountConnected(ctx, &payload); err != nil {
		log.Errorf("relay dispatch failed for user %s: %s", state.UserID, err)
	}

	log.Infof("stripe oauth successful for user %s, connected account %s", state.UserID, accountID)

	return domain.SuccessRedirect(state.SuccessURL, accountID)
}
