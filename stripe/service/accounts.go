package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v74"

	"github.com/jarodadam/active-topia-stripe-functions/stripe/domain"
)

// ExchangeAuthorizationCode trades the OAuth authorization code for the
// connected account id. Any failure, including an invalid or expired code,
// comes back wrapped in ErrOAuthExchange.
func (c *Client) ExchangeAuthorizationCode(ctx context.Context, code string) (string, error) {
	api, err := c.stripeAPI(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrOAuthExchange, err)
	}

	token, err := api.OAuth.New(&stripe.OAuthTokenParams{
		GrantType: stripe.String("authorization_code"),
		Code:      stripe.String(code),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrOAuthExchange, err)
	}

	return token.StripeUserID, nil
}

// RetrieveAccount fetches the connected account's capabilities and business
// profile. Absent fields map to empty strings.
func (c *Client) RetrieveAccount(ctx context.Context, accountID string) (*domain.LinkedAccount, error) {
	api, err := c.stripeAPI(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAccountRetrieve, err)
	}

	account, err := api.Accounts.GetByID(accountID, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAccountRetrieve, err)
	}

	linked := domain.LinkedAccount{
		StripeUserID:    accountID,
		ChargesEnabled:  account.ChargesEnabled,
		PayoutsEnabled:  account.PayoutsEnabled,
		Email:           account.Email,
		LegalEntityType: string(account.Type),
	}

	if account.BusinessProfile != nil {
		linked.BusinessName = account.BusinessProfile.Name
		linked.BusinessWebsite = account.BusinessProfile.URL
		linked.BusinessPhone = account.BusinessProfile.SupportPhone
		linked.BusinessDescription = account.BusinessProfile.ProductDescription
	}

	// The company address wins over the individual one when both exist.
	switch {
	case account.Company != nil && account.Company.Address != nil:
		linked.BusinessAddress = composeAddress(account.Company.Address)
	case account.Individual != nil && account.Individual.Address != nil:
		linked.BusinessAddress = composeAddress(account.Individual.Address)
	}

	return &linked, nil
}

// composeAddress joins the address parts with ", ", dropping empty fields so
// missing middle parts do not leave duplicate or dangling separators.
func composeAddress(a *stripe.Address) string {
	region := strings.TrimSpace(strings.Join(nonEmpty(a.State, a.PostalCode), " "))

	return strings.Join(nonEmpty(a.Line1, a.City, region, a.Country), ", ")
}

func nonEmpty(parts ...string) []string {
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
