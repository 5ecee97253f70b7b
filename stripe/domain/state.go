package domain

import (
	"encoding/json"
	"net/url"
	"strings"
)

// StateVariant marks which historical shape of the state parameter was
// detected while decoding.
type StateVariant int

const (
	// StateStructured is the current shape, percent-encoded JSON.
	StateStructured StateVariant = iota

	// StateLegacy is the old shape, the bare Adalo user id.
	StateLegacy

	// StateMissing means the state parameter was absent.
	StateMissing

	// StateInvalid means the value looked structured but did not parse.
	StateInvalid
)

// Sentinel identities used when the state parameter cannot identify the user.
// They are forwarded to the relay so a human can reconcile the record.
const (
	UnknownUserParseError = "UNKNOWN_ADALO_USER_PARSE_ERROR"
	UnknownUserNoState    = "UNKNOWN_ADALO_USER_NO_STATE"
)

// Fallback dashboard destinations, used when the state carries no URLs.
const (
	FallbackSuccessURL = "https://admin.activetopia.socialtopiahq.com/activetopia-admin-dashboard?status=connected"
	FallbackFailureURL = "https://admin.activetopia.socialtopiahq.com/activetopia-admin-dashboard?error=failed"
)

// OnboardingState carries the caller identity and redirect destinations
// through the Stripe OAuth round trip.
type OnboardingState struct {
	UserID     string       `json:"adaloUserId"`
	SuccessURL string       `json:"successUrl"`
	FailureURL string       `json:"failureUrl"`
	Variant    StateVariant `json:"-"`
}

// EncodeState serializes the state triple to a URL-safe string.
func EncodeState(userID, successURL, failureURL string) (string, error) {
	b, err := json.Marshal(OnboardingState{
		UserID:     userID,
		SuccessURL: successURL,
		FailureURL: failureURL,
	})
	if err != nil {
		return "", err
	}

	return url.QueryEscape(string(b)), nil
}

// DecodeState parses a state value of either historical shape. It never
// fails; malformed input degrades to a sentinel identity and the fallback
// destinations so the redirect flow can always complete.
//
// A value whose first non-space byte is '{' after unescaping is taken as
// structured state; a parse failure there is corruption, not a legacy id.
func DecodeState(raw string) OnboardingState {
	if raw == "" {
		return OnboardingState{
			UserID:     UnknownUserNoState,
			SuccessURL: FallbackSuccessURL,
			FailureURL: FallbackFailureURL,
			Variant:    StateMissing,
		}
	}

	unescaped, err := url.QueryUnescape(raw)
	if err != nil {
		// Values that arrive already decoded may contain stray '%'.
		unescaped = raw
	}

	trimmed := strings.TrimSpace(unescaped)
	if strings.HasPrefix(trimmed, "{") {
		var s OnboardingState
		if err := json.Unmarshal([]byte(trimmed), &s); err == nil && s.UserID != "" {
			s.Variant = StateStructured

			if s.SuccessURL == "" {
				s.SuccessURL = FallbackSuccessURL
			}

			if s.FailureURL == "" {
				s.FailureURL = FallbackFailureURL
			}

			return s
		}

		return OnboardingState{
			UserID:     UnknownUserParseError,
			SuccessURL: FallbackSuccessURL,
			FailureURL: FallbackFailureURL,
			Variant:    StateInvalid,
		}
	}

	// Legacy onboarding links carried the bare user id as the state value.
	return OnboardingState{
		UserID:     unescaped,
		SuccessURL: FallbackSuccessURL,
		FailureURL: FallbackFailureURL,
		Variant:    StateLegacy,
	}
}
