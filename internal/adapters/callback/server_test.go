package callback

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealbot/internal/domain"
	"mealbot/internal/domain/entities"
	"mealbot/internal/ports/input"
)

type fakePayments struct {
	reconcileFn func(correlationID, checkoutSessionID string) (*input.Reconciliation, error)
}

func (f *fakePayments) Status(context.Context, string) *entities.PaymentAccountStatus {
	return &entities.PaymentAccountStatus{}
}

func (f *fakePayments) StartOnboarding(context.Context, string) (string, error) { return "", nil }

func (f *fakePayments) DashboardLogin(context.Context, string) (string, error) { return "", nil }

func (f *fakePayments) BeginJoin(context.Context, string, string) (*input.JoinHandoff, error) {
	return nil, nil
}

func (f *fakePayments) Reconcile(_ context.Context, correlationID, checkoutSessionID string) (*input.Reconciliation, error) {
	return f.reconcileFn(correlationID, checkoutSessionID)
}

var _ input.PaymentUseCase = (*fakePayments)(nil)

type fakeNotifier struct {
	checkoutResults []*input.Reconciliation
	onboardingUsers []string
}

func (f *fakeNotifier) NotifyCheckoutResult(rec *input.Reconciliation) {
	f.checkoutResults = append(f.checkoutResults, rec)
}

func (f *fakeNotifier) NotifyOnboardingReturn(discordUserID string) {
	f.onboardingUsers = append(f.onboardingUsers, discordUserID)
}

func newTestServer(payments *fakePayments) (*Server, *fakeNotifier) {
	notifier := &fakeNotifier{}
	return NewServer(":0", payments, notifier), notifier
}

func TestCheckoutReturnCompleted(t *testing.T) {
	payments := &fakePayments{reconcileFn: func(ref, cs string) (*input.Reconciliation, error) {
		assert.Equal(t, "ref-1", ref)
		assert.Equal(t, "cs_test_123", cs)
		return &input.Reconciliation{DiscordUserID: "d1", Completed: true}, nil
	}}
	srv, notifier := newTestServer(payments)

	req := httptest.NewRequest(http.MethodGet, "/checkout/return?session_id=cs_test_123&ref=ref-1", nil)
	w := httptest.NewRecorder()
	srv.handleCheckoutReturn(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Payment complete")
	require.Len(t, notifier.checkoutResults, 1)
	assert.True(t, notifier.checkoutResults[0].Completed)
}

func TestCheckoutReturnIncomplete(t *testing.T) {
	payments := &fakePayments{reconcileFn: func(string, string) (*input.Reconciliation, error) {
		return &input.Reconciliation{DiscordUserID: "d1", Completed: false}, nil
	}}
	srv, notifier := newTestServer(payments)

	req := httptest.NewRequest(http.MethodGet, "/checkout/return?session_id=cs_x&ref=ref-1", nil)
	w := httptest.NewRecorder()
	srv.handleCheckoutReturn(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "not completed")
	require.Len(t, notifier.checkoutResults, 1)
	assert.False(t, notifier.checkoutResults[0].Completed)
}

func TestCheckoutReturnMissingParams(t *testing.T) {
	payments := &fakePayments{reconcileFn: func(string, string) (*input.Reconciliation, error) {
		t.Fatal("reconcile must not run without parameters")
		return nil, nil
	}}
	srv, notifier := newTestServer(payments)

	req := httptest.NewRequest(http.MethodGet, "/checkout/return?session_id=cs_x", nil)
	w := httptest.NewRecorder()
	srv.handleCheckoutReturn(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, notifier.checkoutResults)
}

func TestCheckoutReturnReplayedRedirect(t *testing.T) {
	payments := &fakePayments{reconcileFn: func(string, string) (*input.Reconciliation, error) {
		return nil, domain.ErrEventNotFound
	}}
	srv, notifier := newTestServer(payments)

	req := httptest.NewRequest(http.MethodGet, "/checkout/return?session_id=cs_x&ref=used-up", nil)
	w := httptest.NewRecorder()
	srv.handleCheckoutReturn(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, notifier.checkoutResults)
}

func TestCheckoutReturnVerificationFailureStillNotifies(t *testing.T) {
	payments := &fakePayments{reconcileFn: func(string, string) (*input.Reconciliation, error) {
		return &input.Reconciliation{DiscordUserID: "d1"}, assert.AnError
	}}
	srv, notifier := newTestServer(payments)

	req := httptest.NewRequest(http.MethodGet, "/checkout/return?session_id=cs_x&ref=ref-1", nil)
	w := httptest.NewRecorder()
	srv.handleCheckoutReturn(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, notifier.checkoutResults, 1)
}

func TestOnboardingReturn(t *testing.T) {
	srv, notifier := newTestServer(&fakePayments{})

	req := httptest.NewRequest(http.MethodGet, "/onboarding/return?uid=d1", nil)
	w := httptest.NewRecorder()
	srv.handleOnboardingReturn(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"d1"}, notifier.onboardingUsers)
}

func TestOnboardingReturnWithoutUser(t *testing.T) {
	srv, notifier := newTestServer(&fakePayments{})

	req := httptest.NewRequest(http.MethodGet, "/onboarding/return", nil)
	w := httptest.NewRecorder()
	srv.handleOnboardingReturn(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, notifier.onboardingUsers)
}
