package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jarodadam/active-topia-stripe-functions/framework/web"
	"github.com/jarodadam/active-topia-stripe-functions/stripe/service"
)

type onboardingResponse struct {
	OnboardingURL string `json:"onboardingUrl"`
}

// StartOnboarding returns the Stripe Connect authorization URL for the
// requesting Adalo user. Adalo opens the URL in a webview to start the
// handshake.
func (h *Stripe) StartOnboarding(ctx *gin.Context) error {
	userID := ctx.Query("adaloUserId")
	successURL := ctx.Query("successUrl")
	failureURL := ctx.Query("failureUrl")

	onboardingURL, err := h.service.BuildAuthorizationURL(ctx, userID, successURL, failureURL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingUserID):
			return web.NewRequestError(err, http.StatusBadRequest)
		case errors.Is(err, service.ErrMissingClientID), errors.Is(err, service.ErrMissingRedirectURI):
			return web.NewRequestError(err, http.StatusInternalServerError)
		default:
			return web.NewRequestError(err, http.StatusInternalServerError)
		}
	}

	return web.Respond(ctx, onboardingResponse{OnboardingURL: onboardingURL}, http.StatusOK)
}

// OAuthCallback lands the browser after the user completes (or aborts) the
// Stripe flow. The service guarantees a redirect outcome for every input.
func (h *Stripe) OAuthCallback(ctx *gin.Context) error {
	outcome := h.service.HandleOAuthCallback(ctx, ctx.Query("code"), ctx.Query("state"))

	return web.Redirect(ctx, outcome.URL)
}
