package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// RedirectOutcome is the terminal result of the OAuth callback. Every path
// through the callback, including faults, ends in exactly one outcome so
// tests can assert on the value instead of on HTTP behavior.
type RedirectOutcome struct {
	URL     string
	Success bool
}

func querySeparator(u string) string {
	if strings.Contains(u, "?") {
		return "&"
	}

	return "?"
}

// SuccessRedirect appends the connected account id to the success destination.
func SuccessRedirect(destination, stripeUserID string) RedirectOutcome {
	return RedirectOutcome{
		URL:     fmt.Sprintf("%s%sstatus=connected&stripeId=%s", destination, querySeparator(destination), url.QueryEscape(stripeUserID)),
		Success: true,
	}
}

// FailureRedirect appends an error message to the failure destination.
func FailureRedirect(destination, message string) RedirectOutcome {
	return RedirectOutcome{
		URL: fmt.Sprintf("%s%serror=%s", destination, querySeparator(destination), url.QueryEscape(message)),
	}
}
