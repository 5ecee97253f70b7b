// Package auth verifies Firebase ID tokens issued to the Adalo app users.
package auth

import "context"

// Identity is the verified caller identity extracted from an ID token.
type Identity struct {
	UID   string
	Email string
}

//go:generate mockery --name Verifier --output ./mocks
type Verifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*Identity, error)
}
