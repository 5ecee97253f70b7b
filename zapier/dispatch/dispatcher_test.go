package dispatch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jarodadam/active-topia-stripe-functions/logger"
	"github.com/jarodadam/active-topia-stripe-functions/zapier/domain"
)

func newTestDispatcher(targetURL string) *RelayDispatcher {
	return &RelayDispatcher{
		c:         resty.New().SetTimeout(time.Second),
		l:         logger.FromContext,
		targetURL: targetURL,
	}
}

func TestDispatchAccountConnected(t *testing.T) {
	var received map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	d := newTestDispatcher(server.URL)

	err := d.DispatchAccountConnected(context.Background(), &domain.AccountConnectedPayload{
		AdaloUserID:    "user-1",
		StripeUserID:   "acct_9",
		ChargesEnabled: true,
		PayoutsEnabled: true,
		AccountStatus:  domain.AccountStatusActive,
		BusinessName:   "Acme Fitness",
		AccountEmail:   "owner@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "user-1", received["adaloUserId"])
	assert.Equal(t, "acct_9", received["stripeUserId"])
	assert.Equal(t, true, received["chargesEnabled"])
	assert.Equal(t, true, received["payoutsEnabled"])
	assert.Equal(t, "active", received["accountStatus"])
	assert.Equal(t, "Acme Fitness", received["businessName"])
	assert.Equal(t, "owner@example.com", received["accountEmail"])
}

func TestDispatchAccountConnectedServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	d := newTestDispatcher(server.URL)

	err := d.DispatchAccountConnected(context.Background(), &domain.AccountConnectedPayload{AdaloUserID: "user-1"})
	assert.ErrorContains(t, err, "500")
}

func TestDispatchAccountConnectedNotConfigured(t *testing.T) {
	d := newTestDispatcher("")

	err := d.DispatchAccountConnected(context.Background(), &domain.AccountConnectedPayload{AdaloUserID: "user-1"})
	assert.ErrorIs(t, err, ErrWebhookNotConfigured)
}
