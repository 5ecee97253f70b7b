package service

import (
	"context"
	"strings"
	"sync"

	"github.com/stripe/stripe-go/v74/client"

	"github.com/jarodadam/active-topia-stripe-functions/secretmanager"
)

// Client wraps the stripe-go client. The underlying API handle is built
// lazily on first use because the API key comes from Secret Manager.
type Client struct {
	mu  sync.Mutex
	api *client.API
}

func NewStripeClient() *Client {
	return &Client{}
}

func (c *Client) stripeAPI(ctx context.Context) (*client.API, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.api != nil {
		return c.api, nil
	}

	key, err := secretmanager.AccessSecretLatestVersion(ctx, secretmanager.SecretStripeKey)
	if err != nil {
		return nil, err
	}

	api := &client.API{}
	api.Init(strings.TrimSpace(string(key)), nil)

	c.api = api

	return api, nil
}
