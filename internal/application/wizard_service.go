package application

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"mealbot/internal/domain"
	"mealbot/internal/domain/entities"
	"mealbot/internal/ports/input"
	"mealbot/internal/ports/output"
)

// wizardSession is one user's in-memory creation flow: the step machine
// plus the draft it gates. Discarded on abandon and after a successful
// submission. Discord delivers each interaction on its own goroutine,
// so mu serializes everything touching the machine, draft and status.
type wizardSession struct {
	mu      sync.Mutex
	machine *Machine
	draft   *entities.EventDraft
	status  *entities.PaymentAccountStatus
}

type WizardService struct {
	meals     output.MealAPI
	events    output.EventAPI
	payments  *PaymentService
	sessions  *SessionService
	analytics output.Analytics

	mu    sync.Mutex
	flows map[string]*wizardSession
}

func NewWizardService(
	meals output.MealAPI,
	events output.EventAPI,
	payments *PaymentService,
	sessions *SessionService,
	analytics output.Analytics,
) *WizardService {
	return &WizardService{
		meals:     meals,
		events:    events,
		payments:  payments,
		sessions:  sessions,
		analytics: analytics,
		flows:     make(map[string]*wizardSession),
	}
}

// Start opens a fresh wizard for the user, discarding any previous one,
// and runs the initial payment-account check. Guards are wired here:
// the machine itself stays a pure position tracker.
func (s *WizardService) Start(ctx context.Context, discordUserID string) (*input.WizardView, error) {
	if _, err := s.sessions.requireSession(ctx, discordUserID); err != nil {
		return nil, err
	}
	ws := &wizardSession{
		machine: NewMachine(domain.WizardSteps()),
		draft:   entities.NewEventDraft(),
		status:  &entities.PaymentAccountStatus{},
	}
	ws.machine.SetGuard(domain.StepPaymentCheck, func() bool {
		return ws.status.State() == entities.AccountActive
	})
	ws.machine.SetGuard(domain.StepMealSelect, func() bool {
		return ws.draft.SelectedMeal != nil
	})
	ws.machine.SetGuard(domain.StepEventDetails, func() bool {
		return ValidateEventDetails(ws.draft)
	})

	ws.status = s.payments.Status(ctx, discordUserID)

	ws.mu.Lock()
	defer ws.mu.Unlock()
	s.mu.Lock()
	s.flows[discordUserID] = ws
	s.mu.Unlock()
	return view(ws), nil
}

func (s *WizardService) Abandon(discordUserID string) {
	s.mu.Lock()
	delete(s.flows, discordUserID)
	s.mu.Unlock()
}

func (s *WizardService) View(discordUserID string) (*input.WizardView, error) {
	ws, err := s.flow(discordUserID)
	if err != nil {
		return nil, err
	}
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return view(ws), nil
}

// Next advances only when the active step's guard passes; the guard
// failure maps to the step's domain error so the adapter can tell the
// user what is missing.
func (s *WizardService) Next(discordUserID string) (*input.WizardView, error) {
	ws, err := s.flow(discordUserID)
	if err != nil {
		return nil, err
	}
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if !ws.machine.CanAdvance() {
		if !ws.machine.StepReady() {
			return nil, stepError(ws.machine.Current())
		}
		return view(ws), nil
	}
	ws.machine.Next()
	return view(ws), nil
}

func (s *WizardService) Back(discordUserID string) (*input.WizardView, error) {
	ws, err := s.flow(discordUserID)
	if err != nil {
		return nil, err
	}
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.machine.Prev()
	return view(ws), nil
}

func (s *WizardService) RecheckPayments(ctx context.Context, discordUserID string) (*input.WizardView, error) {
	ws, err := s.flow(discordUserID)
	if err != nil {
		return nil, err
	}
	status := s.payments.Status(ctx, discordUserID)
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.status = status
	return view(ws), nil
}

func (s *WizardService) MealChoices(ctx context.Context, discordUserID string) ([]entities.Meal, error) {
	sess, err := s.sessions.requireSession(ctx, discordUserID)
	if err != nil {
		return nil, err
	}
	return s.meals.ListByUser(ctx, sess.User.ID)
}

func (s *WizardService) SelectMeal(ctx context.Context, discordUserID, mealID string) (*input.WizardView, error) {
	ws, err := s.flow(discordUserID)
	if err != nil {
		return nil, err
	}
	meal, err := s.meals.Get(ctx, mealID)
	if err != nil {
		return nil, err
	}
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.draft.SelectedMeal = meal
	// The event card inherits the meal's picture.
	ws.draft.ImageURL = meal.ImageURL
	return view(ws), nil
}

func (s *WizardService) SetDetails(discordUserID string, details input.DraftDetails) (*input.WizardView, error) {
	ws, err := s.flow(discordUserID)
	if err != nil {
		return nil, err
	}
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.draft.Title = details.Title
	ws.draft.Description = details.Description
	ws.draft.MaxParticipants = details.MaxParticipants
	ws.draft.EventDate = details.EventDate
	ws.draft.Location = details.Location
	return view(ws), nil
}

func (s *WizardService) PriceInput(discordUserID, in string) (*input.WizardView, error) {
	ws, err := s.flow(discordUserID)
	if err != nil {
		return nil, err
	}
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.draft.Price = AppendPriceInput(ws.draft.Price, in)
	return view(ws), nil
}

func (s *WizardService) PriceBackspace(discordUserID string) (*input.WizardView, error) {
	ws, err := s.flow(discordUserID)
	if err != nil {
		return nil, err
	}
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.draft.Price = PriceBackspace(ws.draft.Price)
	return view(ws), nil
}

// Submit ships the draft to the backend. Numeric and date fields are
// converted here; the backend re-validates the business rules.
func (s *WizardService) Submit(ctx context.Context, discordUserID string) (*entities.Event, error) {
	sess, err := s.sessions.requireSession(ctx, discordUserID)
	if err != nil {
		return nil, err
	}
	ws, err := s.flow(discordUserID)
	if err != nil {
		return nil, err
	}
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if ws.machine.Completed() {
		return nil, domain.ErrNoWizardSession
	}
	if ws.draft.SelectedMeal == nil {
		return nil, domain.ErrNoMealSelected
	}
	if !ValidateEventDetails(ws.draft) {
		return nil, domain.ErrDraftIncomplete
	}
	slots, err := parseSlots(ws.draft.MaxParticipants)
	if err != nil {
		return nil, domain.ErrInvalidSlots
	}
	eventDate, err := ParseEventDateTime(ws.draft.EventDate)
	if err != nil {
		return nil, domain.ErrInvalidDateTime
	}

	event, err := s.events.Create(ctx, sess, output.EventCreate{
		MealID:          ws.draft.SelectedMeal.ID,
		Title:           strings.TrimSpace(ws.draft.Title),
		Description:     strings.TrimSpace(ws.draft.Description),
		MaxParticipants: slots,
		Location:        strings.TrimSpace(ws.draft.Location),
		EventDate:       eventDate.Format(time.RFC3339),
		Price:           PriceInCents(ws.draft.Price),
		ImageURL:        ws.draft.ImageURL,
	})
	if err != nil {
		return nil, err
	}
	s.analytics.EventCreated(sess.User.ID, event, ws.draft.SelectedMeal)

	ws.machine.Complete()
	s.Abandon(discordUserID)
	return event, nil
}

func (s *WizardService) flow(discordUserID string) (*wizardSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ws, ok := s.flows[discordUserID]
	if !ok {
		return nil, domain.ErrNoWizardSession
	}
	return ws, nil
}

// view snapshots the flow under ws.mu; the copy keeps renders stable
// while later presses keep mutating the live draft.
func view(ws *wizardSession) *input.WizardView {
	draft := *ws.draft
	return &input.WizardView{
		Step:          ws.machine.Current(),
		Progress:      ws.machine.Progress(),
		CanGoBack:     ws.machine.CanGoBack(),
		CanGoNext:     ws.machine.CanGoNext(),
		StepReady:     ws.machine.StepReady(),
		Draft:         &draft,
		AccountStatus: ws.status,
	}
}

func stepError(step domain.WizardStep) error {
	switch step {
	case domain.StepPaymentCheck:
		return domain.ErrPaymentsNotReady
	case domain.StepMealSelect:
		return domain.ErrNoMealSelected
	default:
		return domain.ErrDraftIncomplete
	}
}

// parseSlots converts the "max participants" field to an integer.
func parseSlots(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, domain.ErrInvalidSlots
	}
	return n, nil
}

// ParseEventDateTime parses "YYYY-MM-DD HH:MM" in the local timezone.
// Only the format is checked here; whether the date is acceptable is
// the backend's call.
func ParseEventDateTime(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", strings.TrimSpace(s), time.Local)
}
