package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jarodadam/active-topia-stripe-functions/common"
	"github.com/jarodadam/active-topia-stripe-functions/stripe/domain"
)

const authorizeEndpoint = "https://connect.stripe.com/oauth/authorize"

// BuildAuthorizationURL returns the Stripe Connect authorization URL that
// starts the account-linking handshake for the given user. The caller's
// redirect destinations travel inside the state parameter.
func (s *ConnectService) BuildAuthorizationURL(ctx context.Context, userID, successURL, failureURL string) (string, error) {
	if userID == "" {
		return "", ErrMissingUserID
	}

	clientID := common.GetEnv("STRIPE_CLIENT_ID", "")
	if clientID == "" {
		return "", ErrMissingClientID
	}

	redirectURI := common.GetEnv("STRIPE_REDIRECT_URI", "")
	if redirectURI == "" {
		return "", ErrMissingRedirectURI
	}

	if successURL == "" {
		successURL = domain.FallbackSuccessURL
	}

	if failureURL == "" {
		failureURL = domain.FallbackFailureURL
	}

	state, err := domain.EncodeState(userID, successURL, failureURL)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s?response_type=code&client_id=%s&scope=read_write&redirect_uri=%s&state=%s",
		authorizeEndpoint, url.QueryEscape(clientID), url.QueryEscape(redirectURI), state), nil
}
