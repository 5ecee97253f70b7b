package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jarodadam/active-topia-stripe-functions/common"
	"github.com/jarodadam/active-topia-stripe-functions/framework/web"
	"github.com/jarodadam/active-topia-stripe-functions/stripe/service"
)

type reportsRequest struct {
	StripeAccountID string `json:"stripeAccountId"`
}

// GetReports builds the financial report for a connected account. The auth
// middleware has already verified the caller; authorization against the
// requested account happens in the service.
func (h *Stripe) GetReports(ctx *gin.Context) error {
	userID := ctx.GetString(common.CtxKeys.UID)
	if userID == "" {
		return web.NewRequestError(web.ErrAuthenticationFailure, http.StatusUnauthorized)
	}

	var body reportsRequest
	if err := ctx.ShouldBindJSON(&body); err != nil || body.StripeAccountID == "" {
		return web.NewRequestError(service.ErrMissingAccountID, http.StatusBadRequest)
	}

	report, err := h.service.BuildReport(ctx, userID, body.StripeAccountID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccountForbidden):
			return web.NewRequestError(err, http.StatusForbidden)
		case errors.Is(err, service.ErrMissingAccountID):
			return web.NewRequestError(err, http.StatusBadRequest)
		default:
			return web.NewRequestError(err, http.StatusInternalServerError)
		}
	}

	return web.Respond(ctx, report, http.StatusOK)
}
