package application

import (
	"context"
	"sync"

	"mealbot/internal/domain/entities"
	"mealbot/internal/ports/output"
)

// In-memory fakes for the output ports. Function fields override the
// default happy-path behavior per test.

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*entities.Session
	getErr   error
}

func newFakeSessionStore(sessions ...*entities.Session) *fakeSessionStore {
	s := &fakeSessionStore{sessions: make(map[string]*entities.Session)}
	for _, sess := range sessions {
		s.sessions[sess.DiscordUserID] = sess
	}
	return s
}

func (s *fakeSessionStore) Get(_ context.Context, discordUserID string) (*entities.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.sessions[discordUserID], nil
}

func (s *fakeSessionStore) Save(_ context.Context, sess *entities.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.DiscordUserID] = sess
	return nil
}

func (s *fakeSessionStore) ClearToken(_ context.Context, discordUserID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[discordUserID]; ok {
		sess.Token = ""
	}
	return nil
}

func (s *fakeSessionStore) Clear(_ context.Context, discordUserID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, discordUserID)
	return nil
}

var _ output.SessionStore = (*fakeSessionStore)(nil)

type fakePendingJoinStore struct {
	mu      sync.Mutex
	markers map[string]*entities.PendingJoin
}

func newFakePendingJoinStore() *fakePendingJoinStore {
	return &fakePendingJoinStore{markers: make(map[string]*entities.PendingJoin)}
}

func (s *fakePendingJoinStore) Put(_ context.Context, marker *entities.PendingJoin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.markers[marker.CorrelationID] = marker
	return nil
}

func (s *fakePendingJoinStore) Consume(_ context.Context, correlationID string) (*entities.PendingJoin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	marker, ok := s.markers[correlationID]
	if !ok {
		return nil, nil
	}
	delete(s.markers, correlationID)
	return marker, nil
}

var _ output.PendingJoinStore = (*fakePendingJoinStore)(nil)

type fakeUserAPI struct {
	loginFn func(email, password string) (*entities.LoginResponse, error)
	getFn   func(userID string) (*entities.User, error)
}

func (f *fakeUserAPI) Login(_ context.Context, email, password string) (*entities.LoginResponse, error) {
	if f.loginFn != nil {
		return f.loginFn(email, password)
	}
	return &entities.LoginResponse{AccessToken: "tok", User: entities.User{ID: "u1", Email: email}}, nil
}

func (f *fakeUserAPI) Create(_ context.Context, create entities.UserCreate) (*entities.User, error) {
	return &entities.User{ID: "u1", Email: create.Email, Name: create.Name}, nil
}

func (f *fakeUserAPI) Get(_ context.Context, _ *entities.Session, userID string) (*entities.User, error) {
	if f.getFn != nil {
		return f.getFn(userID)
	}
	return &entities.User{ID: userID}, nil
}

func (f *fakeUserAPI) Update(_ context.Context, _ *entities.Session, userID string, _ entities.UserUpdate) (*entities.User, error) {
	return &entities.User{ID: userID}, nil
}

func (f *fakeUserAPI) UploadProfilePicture(_ context.Context, _ *entities.Session, userID, imageURL string) (*entities.User, error) {
	return &entities.User{ID: userID, ProfilePicture: imageURL}, nil
}

var _ output.UserAPI = (*fakeUserAPI)(nil)

type fakeEventAPI struct {
	listFn    func() ([]entities.Event, error)
	mineFn    func() ([]entities.Event, error)
	joinedFn  func() ([]entities.Event, error)
	getFn     func(eventID string) (*entities.Event, error)
	createFn  func(create output.EventCreate) (*entities.Event, error)
	acceptFn  func(eventID, userID string) error
	refundFn  func(eventID string) (*entities.RefundResult, error)
	checkout  func(eventID string) (*entities.CheckoutSession, error)
	deleteErr error
}

func (f *fakeEventAPI) Create(_ context.Context, _ *entities.Session, create output.EventCreate) (*entities.Event, error) {
	if f.createFn != nil {
		return f.createFn(create)
	}
	return &entities.Event{ID: "e1", Title: create.Title, MealID: create.MealID, Price: create.Price}, nil
}

func (f *fakeEventAPI) List(_ context.Context) ([]entities.Event, error) {
	if f.listFn != nil {
		return f.listFn()
	}
	return []entities.Event{}, nil
}

func (f *fakeEventAPI) ListByUser(_ context.Context, _ string) ([]entities.Event, error) {
	return []entities.Event{}, nil
}

func (f *fakeEventAPI) Get(_ context.Context, eventID string) (*entities.Event, error) {
	if f.getFn != nil {
		return f.getFn(eventID)
	}
	return &entities.Event{ID: eventID}, nil
}

func (f *fakeEventAPI) Mine(_ context.Context, _ *entities.Session) ([]entities.Event, error) {
	if f.mineFn != nil {
		return f.mineFn()
	}
	return []entities.Event{}, nil
}

func (f *fakeEventAPI) Joined(_ context.Context, _ *entities.Session) ([]entities.Event, error) {
	if f.joinedFn != nil {
		return f.joinedFn()
	}
	return []entities.Event{}, nil
}

func (f *fakeEventAPI) Participants(_ context.Context, _ *entities.Session, _ string) ([]entities.Participant, error) {
	return []entities.Participant{}, nil
}

func (f *fakeEventAPI) AcceptParticipation(_ context.Context, _ *entities.Session, eventID, userID string) error {
	if f.acceptFn != nil {
		return f.acceptFn(eventID, userID)
	}
	return nil
}

func (f *fakeEventAPI) Update(_ context.Context, _ *entities.Session, eventID string, _ entities.EventUpdate) (*entities.Event, error) {
	return &entities.Event{ID: eventID}, nil
}

func (f *fakeEventAPI) Delete(_ context.Context, _ *entities.Session, _ string) error {
	return f.deleteErr
}

func (f *fakeEventAPI) Refund(_ context.Context, _ *entities.Session, eventID string) (*entities.RefundResult, error) {
	if f.refundFn != nil {
		return f.refundFn(eventID)
	}
	return &entities.RefundResult{RefundAmountCents: 0}, nil
}

func (f *fakeEventAPI) CreateCheckoutSession(_ context.Context, _ *entities.Session, eventID string) (*entities.CheckoutSession, error) {
	if f.checkout != nil {
		return f.checkout(eventID)
	}
	return &entities.CheckoutSession{ClientSecret: "cs_test"}, nil
}

var _ output.EventAPI = (*fakeEventAPI)(nil)

type fakeMealAPI struct {
	listFn func(userID string) ([]entities.Meal, error)
	getFn  func(mealID string) (*entities.Meal, error)
}

func (f *fakeMealAPI) Create(_ context.Context, _ *entities.Session, create entities.MealCreate) (*entities.Meal, error) {
	return &entities.Meal{ID: "m1", Title: create.Title}, nil
}

func (f *fakeMealAPI) ListByUser(_ context.Context, userID string) ([]entities.Meal, error) {
	if f.listFn != nil {
		return f.listFn(userID)
	}
	return []entities.Meal{{ID: "m1", Title: "Lasagna"}}, nil
}

func (f *fakeMealAPI) Get(_ context.Context, mealID string) (*entities.Meal, error) {
	if f.getFn != nil {
		return f.getFn(mealID)
	}
	return &entities.Meal{ID: mealID}, nil
}

func (f *fakeMealAPI) Update(_ context.Context, _ *entities.Session, mealID string, _ entities.MealUpdate) (*entities.Meal, error) {
	return &entities.Meal{ID: mealID}, nil
}

func (f *fakeMealAPI) Delete(_ context.Context, _ *entities.Session, _ string) error {
	return nil
}

var _ output.MealAPI = (*fakeMealAPI)(nil)

type fakePaymentAPI struct {
	statusFn        func() (*entities.PaymentAccountStatus, error)
	sessionStatusFn func(checkoutSessionID string) (*entities.SessionStatus, error)
}

func (f *fakePaymentAPI) Connect(_ context.Context, _ *entities.Session) (*entities.ConnectLink, error) {
	return &entities.ConnectLink{OnboardingURL: "https://onboard.example/x", AccountID: "acct_1"}, nil
}

func (f *fakePaymentAPI) Status(_ context.Context, _ *entities.Session) (*entities.PaymentAccountStatus, error) {
	if f.statusFn != nil {
		return f.statusFn()
	}
	return &entities.PaymentAccountStatus{Connected: true, ChargesEnabled: true, OnboardingComplete: true}, nil
}

func (f *fakePaymentAPI) DashboardLogin(_ context.Context, _ *entities.Session) (*entities.DashboardLink, error) {
	return &entities.DashboardLink{AccountURL: "https://dash.example/x"}, nil
}

func (f *fakePaymentAPI) SessionStatus(_ context.Context, _ *entities.Session, checkoutSessionID string) (*entities.SessionStatus, error) {
	if f.sessionStatusFn != nil {
		return f.sessionStatusFn(checkoutSessionID)
	}
	return &entities.SessionStatus{Status: "complete", PaymentStatus: "paid"}, nil
}

var _ output.PaymentAPI = (*fakePaymentAPI)(nil)

// fakeAnalytics records event names in call order.
type fakeAnalytics struct {
	mu    sync.Mutex
	calls []string
}

func (f *fakeAnalytics) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeAnalytics) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAnalytics) UserSignedUp(string)                                      { f.record("user_sign_up") }
func (f *fakeAnalytics) UserLoggedIn(string)                                      { f.record("user_log_in") }
func (f *fakeAnalytics) MealCreated(string, *entities.Meal)                       { f.record("meal_created") }
func (f *fakeAnalytics) EventCreated(string, *entities.Event, *entities.Meal)     { f.record("event_created") }
func (f *fakeAnalytics) EventJoined(string, *entities.Event, *entities.Meal)      { f.record("event_joined") }
func (f *fakeAnalytics) OnboardingStarted(string)                                 { f.record("stripe_onboarding_started") }

var _ output.Analytics = (*fakeAnalytics)(nil)

func loggedInSession(discordUserID string) *entities.Session {
	return &entities.Session{
		DiscordUserID: discordUserID,
		Token:         "tok",
		User:          &entities.User{ID: "u1", Name: "Alex", Email: "alex@example.com"},
	}
}
