package domain

// WizardStep is one position in the fixed, ordered event-creation flow.
type WizardStep int

const (
	StepPaymentCheck WizardStep = iota
	StepMealSelect
	StepEventDetails
	StepSummary
)

func (s WizardStep) String() string {
	switch s {
	case StepPaymentCheck:
		return "payment_check"
	case StepMealSelect:
		return "meal_select"
	case StepEventDetails:
		return "event_details"
	case StepSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// WizardSteps returns the step order. Fixed at construction, never
// mutated at runtime.
func WizardSteps() []WizardStep {
	return []WizardStep{StepPaymentCheck, StepMealSelect, StepEventDetails, StepSummary}
}
