package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mealbot/internal/domain"
)

func TestMachineStartsAtFirstStep(t *testing.T) {
	m := NewMachine(domain.WizardSteps())

	assert.Equal(t, domain.StepPaymentCheck, m.Current())
	assert.False(t, m.CanGoBack())
	assert.True(t, m.CanGoNext())
}

func TestMachineNextAndPrevMoveOneStep(t *testing.T) {
	m := NewMachine(domain.WizardSteps())

	m.Next()
	assert.Equal(t, domain.StepMealSelect, m.Current())
	assert.True(t, m.CanGoBack())

	m.Prev()
	assert.Equal(t, domain.StepPaymentCheck, m.Current())
}

func TestMachinePrevAtFirstStepIsNoOp(t *testing.T) {
	m := NewMachine(domain.WizardSteps())

	m.Prev()
	m.Prev()

	assert.Equal(t, domain.StepPaymentCheck, m.Current())
}

func TestMachineNextAtLastStepIsNoOp(t *testing.T) {
	m := NewMachine(domain.WizardSteps())
	for range domain.WizardSteps() {
		m.Next()
	}

	assert.Equal(t, domain.StepSummary, m.Current())
	assert.False(t, m.CanGoNext())

	m.Next()
	assert.Equal(t, domain.StepSummary, m.Current())
}

func TestMachineNextIgnoresGuards(t *testing.T) {
	// Next is purely positional; only CanAdvance consults the guard.
	m := NewMachine(domain.WizardSteps())
	m.SetGuard(domain.StepPaymentCheck, func() bool { return false })

	assert.False(t, m.StepReady())
	assert.False(t, m.CanAdvance())

	m.Next()
	assert.Equal(t, domain.StepMealSelect, m.Current())
}

func TestMachineStepWithoutGuardIsReady(t *testing.T) {
	m := NewMachine(domain.WizardSteps())

	assert.True(t, m.StepReady())
	assert.True(t, m.CanAdvance())
}

func TestMachineGuardOnlyAffectsItsOwnStep(t *testing.T) {
	m := NewMachine(domain.WizardSteps())
	m.SetGuard(domain.StepMealSelect, func() bool { return false })

	assert.True(t, m.StepReady())

	m.Next()
	assert.False(t, m.StepReady())

	m.Prev()
	assert.True(t, m.StepReady())
}

func TestMachineGuardReevaluatedEachCall(t *testing.T) {
	ready := false
	m := NewMachine(domain.WizardSteps())
	m.SetGuard(domain.StepPaymentCheck, func() bool { return ready })

	assert.False(t, m.CanAdvance())
	ready = true
	assert.True(t, m.CanAdvance())
}

func TestMachineCanAdvanceFalseAtLastStepEvenWhenReady(t *testing.T) {
	m := NewMachine(domain.WizardSteps())
	for range domain.WizardSteps() {
		m.Next()
	}

	assert.True(t, m.StepReady())
	assert.False(t, m.CanAdvance())
}

func TestMachineProgress(t *testing.T) {
	m := NewMachine(domain.WizardSteps())

	assert.InDelta(t, 25.0, m.Progress(), 0.001)
	m.Next()
	assert.InDelta(t, 50.0, m.Progress(), 0.001)
	m.Next()
	assert.InDelta(t, 75.0, m.Progress(), 0.001)
	m.Next()
	assert.InDelta(t, 100.0, m.Progress(), 0.001)
}

func TestMachineCompleteIsIrreversible(t *testing.T) {
	m := NewMachine(domain.WizardSteps())
	assert.False(t, m.Completed())

	m.Complete()
	assert.True(t, m.Completed())

	m.Prev()
	m.Next()
	assert.True(t, m.Completed())
}
