package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jarodadam/active-topia-stripe-functions/common"
	testtools "github.com/jarodadam/active-topia-stripe-functions/common/test_tools"
	"github.com/jarodadam/active-topia-stripe-functions/framework/web"
	"github.com/jarodadam/active-topia-stripe-functions/stripe/domain"
	"github.com/jarodadam/active-topia-stripe-functions/stripe/iface/mocks"
	"github.com/jarodadam/active-topia-stripe-functions/stripe/service"
)

func generateGetCtx(t *testing.T, rawQuery string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "http://localhost:8080/?"+rawQuery, nil)

	return ctx, recorder
}

func webErrorStatus(t *testing.T, err error) int {
	t.Helper()

	var webErr *web.Error

	require.ErrorAs(t, err, &webErr)

	return webErr.Status
}

func TestStartOnboarding(t *testing.T) {
	svc := &mocks.ConnectService{}
	svc.On("BuildAuthorizationURL", mock.Anything, "user-1", "https://ok.example.com", "https://bad.example.com").
		Return("https://connect.stripe.com/oauth/authorize?client_id=ca_1", nil)

	h := &Stripe{service: svc}

	ctx, recorder := generateGetCtx(t, "adaloUserId=user-1&successUrl=https%3A%2F%2Fok.example.com&failureUrl=https%3A%2F%2Fbad.example.com")

	require.NoError(t, h.StartOnboarding(ctx))
	assert.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "https://connect.stripe.com/oauth/authorize?client_id=ca_1", body["onboardingUrl"])

	svc.AssertExpectations(t)
}

func TestStartOnboardingErrors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "missing user id",
			serviceErr: service.ErrMissingUserID,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing client id",
			serviceErr: service.ErrMissingClientID,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "missing redirect uri",
			serviceErr: service.ErrMissingRedirectURI,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "unexpected error",
			serviceErr: errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mocks.ConnectService{}
			svc.On("BuildAuthorizationURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				Return("", tt.serviceErr)

			h := &Stripe{service: svc}

			ctx, _ := generateGetCtx(t, "adaloUserId=user-1")

			err := h.StartOnboarding(ctx)
			assert.Equal(t, tt.wantStatus, webErrorStatus(t, err))
		})
	}
}

func TestOAuthCallback(t *testing.T) {
	svc := &mocks.ConnectService{}
	svc.On("HandleOAuthCallback", mock.Anything, "ac_code", "raw-state").
		Return(domain.RedirectOutcome{URL: "https://ok.example.com?status=connected&stripeId=acct_9", Success: true})

	h := &Stripe{service: svc}

	ctx, recorder := generateGetCtx(t, "code=ac_code&state=raw-state")

	require.NoError(t, h.OAuthCallback(ctx))
	ctx.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "https://ok.example.com?status=connected&stripeId=acct_9", recorder.Header().Get("Location"))

	svc.AssertExpectations(t)
}

func TestGetReports(t *testing.T) {
	report := &domain.Report{
		StripeAccountID: "acct_9",
		ReportDate:      "2024-06-01",
		MTD:             domain.WindowMetrics{Revenue: 1000, Transactions: 2},
	}

	svc := &mocks.ConnectService{}
	svc.On("BuildReport", mock.Anything, "firebase-uid", "acct_9").
		Return(report, nil)

	h := &Stripe{service: svc}

	ctx := testtools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{"stripeAccountId": "acct_9"}, nil)
	ctx.Set(common.CtxKeys.UID, "firebase-uid")

	require.NoError(t, h.GetReports(ctx))

	svc.AssertExpectations(t)
}

func TestGetReportsUnauthenticated(t *testing.T) {
	h := &Stripe{service: &mocks.ConnectService{}}

	ctx := testtools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{"stripeAccountId": "acct_9"}, nil)

	err := h.GetReports(ctx)
	assert.Equal(t, http.StatusUnauthorized, webErrorStatus(t, err))
}

func TestGetReportsMissingAccountID(t *testing.T) {
	h := &Stripe{service: &mocks.ConnectService{}}

	ctx := testtools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{}, nil)
	ctx.Set(common.CtxKeys.UID, "firebase-uid")

	err := h.GetReports(ctx)
	assert.Equal(t, http.StatusBadRequest, webErrorStatus(t, err))
}

func TestGetReportsForbidden(t *testing.T) {
	svc := &mocks.ConnectService{}
	svc.On("BuildReport", mock.Anything, "firebase-uid", "acct_9").
		Return(nil, service.ErrAccountForbidden)

	h := &Stripe{service: svc}

	ctx := testtools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{"stripeAccountId": "acct_9"}, nil)
	ctx.Set(common.CtxKeys.UID, "firebase-uid")

	err := h.GetReports(ctx)
	assert.Equal(t, http.StatusForbidden, webErrorStatus(t, err))
}
