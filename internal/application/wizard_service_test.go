package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealbot/internal/domain"
	"mealbot/internal/domain/entities"
	"mealbot/internal/ports/input"
	"mealbot/internal/ports/output"
)

type wizardFixture struct {
	svc       *WizardService
	meals     *fakeMealAPI
	events    *fakeEventAPI
	payments  *fakePaymentAPI
	analytics *fakeAnalytics
}

func newWizardFixture(sessions ...*entities.Session) *wizardFixture {
	f := &wizardFixture{
		meals:     &fakeMealAPI{},
		events:    &fakeEventAPI{},
		payments:  &fakePaymentAPI{},
		analytics: &fakeAnalytics{},
	}
	store := newFakeSessionStore(sessions...)
	sessionSvc := NewSessionService(store, &fakeUserAPI{}, f.analytics)
	listingSvc := NewEventService(f.events, sessionSvc)
	paymentSvc := NewPaymentService(f.payments, f.events, f.meals, newFakePendingJoinStore(), sessionSvc, listingSvc, f.analytics, "https://pay.example/checkout")
	f.svc = NewWizardService(f.meals, f.events, paymentSvc, sessionSvc, f.analytics)
	return f
}

func (f *wizardFixture) fillDetails(t *testing.T) {
	t.Helper()
	_, err := f.svc.SetDetails("d1", detailsFixture())
	require.NoError(t, err)
	_, err = f.svc.PriceInput("d1", "1250")
	require.NoError(t, err)
}

func detailsFixture() input.DraftDetails {
	return input.DraftDetails{
		Title:           "Pasta night",
		Description:     "Fresh tagliatelle for six.",
		MaxParticipants: "6",
		EventDate:       "2026-03-14 19:00",
		Location:        "Dorm 3 kitchen",
	}
}

func TestWizardStartRequiresSession(t *testing.T) {
	f := newWizardFixture()

	_, err := f.svc.Start(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
}

func TestWizardStartChecksPaymentAccount(t *testing.T) {
	f := newWizardFixture(loggedInSession("d1"))

	v, err := f.svc.Start(context.Background(), "d1")
	require.NoError(t, err)

	assert.Equal(t, domain.StepPaymentCheck, v.Step)
	assert.Equal(t, entities.AccountActive, v.AccountStatus.State())
	assert.True(t, v.StepReady)
}

func TestWizardNextBlockedWithoutActiveAccount(t *testing.T) {
	f := newWizardFixture(loggedInSession("d1"))
	f.payments.statusFn = func() (*entities.PaymentAccountStatus, error) {
		return &entities.PaymentAccountStatus{Connected: true}, nil
	}
	_, err := f.svc.Start(context.Background(), "d1")
	require.NoError(t, err)

	_, err = f.svc.Next("d1")
	assert.ErrorIs(t, err, domain.ErrPaymentsNotReady)
}

func TestWizardRecheckUnblocksPaymentStep(t *testing.T) {
	f := newWizardFixture(loggedInSession("d1"))
	blocked := true
	f.payments.statusFn = func() (*entities.PaymentAccountStatus, error) {
		if blocked {
			return &entities.PaymentAccountStatus{}, nil
		}
		return &entities.PaymentAccountStatus{Connected: true, OnboardingComplete: true, ChargesEnabled: true}, nil
	}
	_, err := f.svc.Start(context.Background(), "d1")
	require.NoError(t, err)
	_, err = f.svc.Next("d1")
	require.ErrorIs(t, err, domain.ErrPaymentsNotReady)

	blocked = false
	v, err := f.svc.RecheckPayments(context.Background(), "d1")
	require.NoError(t, err)
	assert.True(t, v.StepReady)

	v, err = f.svc.Next("d1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepMealSelect, v.Step)
}

func TestWizardMealStepBlocksUntilSelection(t *testing.T) {
	f := newWizardFixture(loggedInSession("d1"))
	_, err := f.svc.Start(context.Background(), "d1")
	require.NoError(t, err)
	_, err = f.svc.Next("d1")
	require.NoError(t, err)

	_, err = f.svc.Next("d1")
	assert.ErrorIs(t, err, domain.ErrNoMealSelected)

	_, err = f.svc.SelectMeal(context.Background(), "d1", "m1")
	require.NoError(t, err)

	v, err := f.svc.Next("d1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepEventDetails, v.Step)
}

func TestWizardDetailsStepBlocksUntilComplete(t *testing.T) {
	f := newWizardFixture(loggedInSession("d1"))
	_, err := f.svc.Start(context.Background(), "d1")
	require.NoError(t, err)
	_, err = f.svc.Next("d1")
	require.NoError(t, err)
	_, err = f.svc.SelectMeal(context.Background(), "d1", "m1")
	require.NoError(t, err)
	_, err = f.svc.Next("d1")
	require.NoError(t, err)

	_, err = f.svc.Next("d1")
	assert.ErrorIs(t, err, domain.ErrDraftIncomplete)

	f.fillDetails(t)

	v, err := f.svc.Next("d1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepSummary, v.Step)
}

func TestWizardBackPreservesDraft(t *testing.T) {
	f := newWizardFixture(loggedInSession("d1"))
	_, err := f.svc.Start(context.Background(), "d1")
	require.NoError(t, err)
	_, err = f.svc.Next("d1")
	require.NoError(t, err)
	_, err = f.svc.SelectMeal(context.Background(), "d1", "m1")
	require.NoError(t, err)

	v, err := f.svc.Back("d1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepPaymentCheck, v.Step)
	require.NotNil(t, v.Draft.SelectedMeal)
	assert.Equal(t, "m1", v.Draft.SelectedMeal.ID)
}

func TestWizardSubmitShipsConvertedDraft(t *testing.T) {
	f := newWizardFixture(loggedInSession("d1"))
	var got output.EventCreate
	f.events.createFn = func(create output.EventCreate) (*entities.Event, error) {
		got = create
		return &entities.Event{ID: "e1", Title: create.Title, Price: create.Price}, nil
	}
	_, err := f.svc.Start(context.Background(), "d1")
	require.NoError(t, err)
	_, err = f.svc.SelectMeal(context.Background(), "d1", "m1")
	require.NoError(t, err)
	f.fillDetails(t)

	event, err := f.svc.Submit(context.Background(), "d1")
	require.NoError(t, err)

	assert.Equal(t, "e1", event.ID)
	assert.Equal(t, "m1", got.MealID)
	assert.Equal(t, "Pasta night", got.Title)
	assert.Equal(t, 6, got.MaxParticipants)
	assert.Equal(t, 1250, got.Price)
	assert.Contains(t, got.EventDate, "2026-03-14T19:00")
	assert.Contains(t, f.analytics.recorded(), "event_created")

	// The flow is discarded after a successful submission.
	_, err = f.svc.View("d1")
	assert.ErrorIs(t, err, domain.ErrNoWizardSession)
}

func TestWizardSubmitRejectsBadSlots(t *testing.T) {
	f := newWizardFixture(loggedInSession("d1"))
	_, err := f.svc.Start(context.Background(), "d1")
	require.NoError(t, err)
	_, err = f.svc.SelectMeal(context.Background(), "d1", "m1")
	require.NoError(t, err)
	details := detailsFixture()
	details.MaxParticipants = "zero"
	_, err = f.svc.SetDetails("d1", details)
	require.NoError(t, err)
	_, err = f.svc.PriceInput("d1", "500")
	require.NoError(t, err)

	_, err = f.svc.Submit(context.Background(), "d1")
	assert.ErrorIs(t, err, domain.ErrInvalidSlots)
}

func TestWizardSubmitRejectsBadDate(t *testing.T) {
	f := newWizardFixture(loggedInSession("d1"))
	_, err := f.svc.Start(context.Background(), "d1")
	require.NoError(t, err)
	_, err = f.svc.SelectMeal(context.Background(), "d1", "m1")
	require.NoError(t, err)
	details := detailsFixture()
	details.EventDate = "next friday"
	_, err = f.svc.SetDetails("d1", details)
	require.NoError(t, err)
	_, err = f.svc.PriceInput("d1", "500")
	require.NoError(t, err)

	_, err = f.svc.Submit(context.Background(), "d1")
	assert.ErrorIs(t, err, domain.ErrInvalidDateTime)
}

func TestWizardSubmitFailureKeepsFlowAlive(t *testing.T) {
	f := newWizardFixture(loggedInSession("d1"))
	f.events.createFn = func(output.EventCreate) (*entities.Event, error) {
		return nil, errors.New("backend rejected")
	}
	_, err := f.svc.Start(context.Background(), "d1")
	require.NoError(t, err)
	_, err = f.svc.SelectMeal(context.Background(), "d1", "m1")
	require.NoError(t, err)
	f.fillDetails(t)

	_, err = f.svc.Submit(context.Background(), "d1")
	require.Error(t, err)

	// The user can fix things and retry.
	v, err := f.svc.View("d1")
	require.NoError(t, err)
	assert.NotNil(t, v.Draft)
}

func TestWizardAbandonDiscardsFlow(t *testing.T) {
	f := newWizardFixture(loggedInSession("d1"))
	_, err := f.svc.Start(context.Background(), "d1")
	require.NoError(t, err)

	f.svc.Abandon("d1")

	_, err = f.svc.View("d1")
	assert.ErrorIs(t, err, domain.ErrNoWizardSession)
}

func TestWizardStartReplacesPreviousFlow(t *testing.T) {
	f := newWizardFixture(loggedInSession("d1"))
	_, err := f.svc.Start(context.Background(), "d1")
	require.NoError(t, err)
	_, err = f.svc.SelectMeal(context.Background(), "d1", "m1")
	require.NoError(t, err)

	v, err := f.svc.Start(context.Background(), "d1")
	require.NoError(t, err)
	assert.Nil(t, v.Draft.SelectedMeal)
	assert.Equal(t, "0", v.Draft.Price)
}

func TestWizardFlowsAreIndependentPerUser(t *testing.T) {
	f := newWizardFixture(loggedInSession("d1"), loggedInSession("d2"))
	_, err := f.svc.Start(context.Background(), "d1")
	require.NoError(t, err)
	_, err = f.svc.Start(context.Background(), "d2")
	require.NoError(t, err)

	_, err = f.svc.SelectMeal(context.Background(), "d1", "m1")
	require.NoError(t, err)

	v, err := f.svc.View("d2")
	require.NoError(t, err)
	assert.Nil(t, v.Draft.SelectedMeal)
}

// Discord delivers button presses on separate goroutines, so two quick
// presses must not corrupt the shared draft. Run with -race.
func TestWizardConcurrentPressesStaySerialized(t *testing.T) {
	f := newWizardFixture(loggedInSession("d1"))
	_, err := f.svc.Start(context.Background(), "d1")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, d := range []string{"5", "2", "9"} {
				_, err := f.svc.PriceInput("d1", d)
				assert.NoError(t, err)
			}
			_, err := f.svc.PriceBackspace("d1")
			assert.NoError(t, err)
			_, err = f.svc.View("d1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	v, err := f.svc.View("d1")
	require.NoError(t, err)
	assert.Len(t, v.Draft.Price, 4)
	for _, r := range v.Draft.Price {
		assert.Contains(t, "529", string(r))
	}
}
