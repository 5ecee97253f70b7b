package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jarodadam/active-topia-stripe-functions/common"
	"github.com/jarodadam/active-topia-stripe-functions/logger"
	"github.com/jarodadam/active-topia-stripe-functions/zapier/domain"
)

// ErrWebhookNotConfigured is returned when ZAPIER_WEBHOOK_URL is unset.
var ErrWebhookNotConfigured = errors.New("zapier webhook url is not configured")

//go:generate mockery --name Dispatcher --output=./mocks
type Dispatcher interface {
	DispatchAccountConnected(ctx context.Context, payload *domain.AccountConnectedPayload) error
}

// RelayDispatcher posts onboarding results to the Zapier catch hook. The zap
// owns the find-or-update of the Adalo record, so delivery here is one-way.
type RelayDispatcher struct {
	c         *resty.Client
	l         logger.Provider
	targetURL string
}

func NewRelayDispatcher(log logger.Provider) *RelayDispatcher {
	return &RelayDispatcher{
		c:         resty.New().SetTimeout(10 * time.Second),
		l:         log,
		targetURL: common.GetEnv("ZAPIER_WEBHOOK_URL", ""),
	}
}

// DispatchAccountConnected sends the payload to the relay. Callers treat a
// failure as non-fatal; the relay reconciles missed events on its own side.
func (d *RelayDispatcher) DispatchAccountConnected(ctx context.Context, payload *domain.AccountConnectedPayload) error {
	if d.targetURL == "" {
		return ErrWebhookNotConfigured
	}

	resp, err := d.c.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(d.targetURL)
	if err != nil {
		return err
	}

	if resp.IsError() {
		return fmt.Errorf("zapier webhook request failed with status code %d", resp.StatusCode())
	}

	d.l(ctx).Infof("dispatched account connected event for user %s", payload.AdaloUserID)

	return nil
}
