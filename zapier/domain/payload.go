package domain

// AccountConnectedPayload is the flat record the Zapier relay persists into
// the Adalo user record after a Stripe account is linked. Field names match
// the zap's field mapping and must not change without updating the zap.
type AccountConnectedPayload struct {
	AdaloUserID         string `json:"adaloUserId"`
	StripeUserID        string `json:"stripeUserId"`
	ChargesEnabled      bool   `json:"chargesEnabled"`
	PayoutsEnabled      bool   `json:"payoutsEnabled"`
	AccountStatus       string `json:"accountStatus"`
	BusinessName        string `json:"businessName"`
	BusinessAddress     string `json:"businessAddress"`
	BusinessPhone       string `json:"businessPhone"`
	BusinessWebsite     string `json:"businessWebsite"`
	BusinessDescription string `json:"businessDescription"`
	LegalEntityType     string `json:"legalEntityType"`
	AccountEmail        string `json:"accountEmail"`
}

// AccountStatusActive is the only status the relay currently understands.
const AccountStatusActive = "active"
