package secretmanager

import (
	"context"
	"errors"
	"fmt"
	"sync"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"

	"github.com/jarodadam/active-topia-stripe-functions/common"
)

type SecretName string

// List of configured secrets in Secret Manager
const (
	SecretStripeKey SecretName = "stripe-secret-key"
)

const latestVersion = "latest"

var (
	// ErrProjectNotConfigured is returned when no GCP project id could be
	// resolved from the environment.
	ErrProjectNotConfigured = errors.New("gcp project id is not configured")

	// ErrSecretAccess wraps failures coming back from Secret Manager.
	ErrSecretAccess = errors.New("secret access failed")
)

var (
	state = make(map[string][]byte)
	mutex = &sync.Mutex{}
)

// AccessSecretLatestVersion utility function to fetch the latest version of a secret payload.
// Payloads are cached for the process lifetime, rotations require a new deploy.
func AccessSecretLatestVersion(ctx context.Context, secret SecretName) ([]byte, error) {
	return AccessSecretVersion(ctx, string(secret), latestVersion)
}

// AccessSecretVersion fetch payload of a secret's version
func AccessSecretVersion(ctx context.Context, secret, version string) ([]byte, error) {
	if common.ProjectID == "" {
		return nil, ErrProjectNotConfigured
	}

	name := secretResourceName(common.ProjectID, secret, version)

	mutex.Lock()
	v, prs := state[name]
	mutex.Unlock()

	if prs {
		return v, nil
	}

	sm, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSecretAccess, err)
	}

	defer sm.Close()

	accessSecretVersionRes, err := sm.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSecretAccess, err)
	}

	data := accessSecretVersionRes.Payload.GetData()

	mutex.Lock()
	state[name] = data
	mutex.Unlock()

	return data, nil
}

func secretResourceName(projectID, secret, version string) string {
	return fmt.Sprintf("projects/%s/secrets/%s/versions/%s", projectID, secret, version)
}
