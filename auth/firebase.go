package auth

import (
	"context"
	"errors"

	firebase "firebase.google.com/go/v4"

	"github.com/jarodadam/active-topia-stripe-functions/common"
)

var errInvalidIDToken = errors.New("invalid auth token")

// FirebaseVerifier verifies tokens against the project's Firebase Auth tenant.
type FirebaseVerifier struct {
	app *firebase.App
}

func NewFirebaseVerifier(ctx context.Context) (*FirebaseVerifier, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID: common.ProjectID,
	})
	if err != nil {
		return nil, err
	}

	return &FirebaseVerifier{app: app}, nil
}

func (v *FirebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (*Identity, error) {
	client, err := v.app.Auth(ctx)
	if err != nil {
		return nil, err
	}

	token, err := client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errInvalidIDToken
	}

	identity := Identity{
		UID: token.UID,
	}

	if email, prs := token.Claims["email"]; prs {
		if v, ok := email.(string); ok {
			identity.Email = v
		}
	}

	return &identity, nil
}
