package domain

// LinkedAccount is the connected Stripe account surface captured during the
// onboarding callback. It is held in memory only for the duration of the
// callback; the relay owns persistence.
type LinkedAccount struct {
	StripeUserID        string
	ChargesEnabled      bool
	PayoutsEnabled      bool
	Email               string
	BusinessName        string
	BusinessAddress     string
	BusinessPhone       string
	BusinessWebsite     string
	BusinessDescription string
	LegalEntityType     string
}

// ConnectedAccount is the authorization record mapping an Adalo user to the
// Stripe account they are allowed to view reports for.
type ConnectedAccount struct {
	ID              string `firestore:"-"`
	UserID          string `firestore:"userId"`
	StripeAccountID string `firestore:"stripeAccountId"`
	ChargesEnabled  bool   `firestore:"chargesEnabled"`
	PayoutsEnabled  bool   `firestore:"payoutsEnabled"`
}
