package application

import "mealbot/internal/domain"

// Guard reports whether the active step's readiness predicate holds.
// Guards are supplied by the composer; the machine itself enforces no
// business rule.
type Guard func() bool

// Machine tracks the position in a fixed ordered step sequence.
// Next/Prev are pure positional moves: they never validate, never
// error and never wrap around.
type Machine struct {
	steps     []domain.WizardStep
	index     int
	completed bool
	guards    map[domain.WizardStep]Guard
}

// NewMachine builds a machine over the given step order. The order is
// fixed for the machine's lifetime.
func NewMachine(steps []domain.WizardStep) *Machine {
	return &Machine{
		steps:  steps,
		guards: make(map[domain.WizardStep]Guard),
	}
}

// SetGuard registers the readiness predicate for a step. Steps without
// a guard are always ready.
func (m *Machine) SetGuard(step domain.WizardStep, g Guard) {
	m.guards[step] = g
}

// Current returns the active step.
func (m *Machine) Current() domain.WizardStep {
	return m.steps[m.index]
}

// Next advances to the following step. Silently ignored at the last
// step.
func (m *Machine) Next() {
	if m.index < len(m.steps)-1 {
		m.index++
	}
}

// Prev moves to the preceding step. Silently ignored at the first step.
func (m *Machine) Prev() {
	if m.index > 0 {
		m.index--
	}
}

// CanGoBack is purely positional; it does not consult guards.
func (m *Machine) CanGoBack() bool {
	return m.index > 0
}

// CanGoNext is purely positional; it does not consult guards.
func (m *Machine) CanGoNext() bool {
	return m.index < len(m.steps)-1
}

// StepReady evaluates the active step's guard.
func (m *Machine) StepReady() bool {
	g, ok := m.guards[m.Current()]
	if !ok {
		return true
	}
	return g()
}

// CanAdvance gates Next on both position and the active guard.
func (m *Machine) CanAdvance() bool {
	return m.CanGoNext() && m.StepReady()
}

// Complete marks the flow as finished. Irreversible.
func (m *Machine) Complete() {
	m.completed = true
}

func (m *Machine) Completed() bool {
	return m.completed
}

// Progress returns (index+1)/total*100, always in (0, 100].
func (m *Machine) Progress() float64 {
	return float64(m.index+1) / float64(len(m.steps)) * 100
}
