package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccessRedirect(t *testing.T) {
	tests := []struct {
		name         string
		destination  string
		stripeUserID string
		want         string
	}{
		{
			name:         "plain destination",
			destination:  "https://app.example.com/done",
			stripeUserID: "acct_123",
			want:         "https://app.example.com/done?status=connected&stripeId=acct_123",
		},
		{
			name:         "destination with existing query",
			destination:  "https://app.example.com/done?screen=home",
			stripeUserID: "acct_123",
			want:         "https://app.example.com/done?screen=home&status=connected&stripeId=acct_123",
		},
		{
			name:         "account id is escaped",
			destination:  "https://app.example.com/done",
			stripeUserID: "acct 1&2",
			want:         "https://app.example.com/done?status=connected&stripeId=acct+1%262",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := SuccessRedirect(tt.destination, tt.stripeUserID)

			assert.True(t, outcome.Success)
			assert.Equal(t, tt.want, outcome.URL)
		})
	}
}

func TestFailureRedirect(t *testing.T) {
	tests := []struct {
		name        string
		destination string
		message     string
		want        string
	}{
		{
			name:        "plain destination",
			destination: "https://app.example.com/failed",
			message:     "Stripe connection failed.",
			want:        "https://app.example.com/failed?error=Stripe+connection+failed.",
		},
		{
			name:        "destination with existing query",
			destination: "https://app.example.com/failed?screen=home",
			message:     "boom",
			want:        "https://app.example.com/failed?screen=home&error=boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := FailureRedirect(tt.destination, tt.message)

			assert.False(t, outcome.Success)
			assert.Equal(t, tt.want, outcome.URL)
		})
	}
}
