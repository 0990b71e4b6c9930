package entities

// AccountState is the derived lifecycle state of a connected payment account.
// States are mutually exclusive and ordered by completeness.
type AccountState int

const (
	AccountNotConnected AccountState = iota
	AccountOnboardingIncomplete
	AccountNeedsVerification
	AccountActive
)

func (s AccountState) String() string {
	switch s {
	case AccountOnboardingIncomplete:
		return "onboarding_incomplete"
	case AccountNeedsVerification:
		return "needs_verification"
	case AccountActive:
		return "active"
	default:
		return "not_connected"
	}
}

// PaymentAccountStatus mirrors the backend's connected-account status.
// Always re-derived from the latest fetch, never persisted.
type PaymentAccountStatus struct {
	Connected          bool   `json:"connected"`
	ChargesEnabled     bool   `json:"charges_enabled"`
	OnboardingComplete bool   `json:"onboarding_complete"`
	AccountID          string `json:"account_id,omitempty"`
}

// State derives the four-state lifecycle from the raw flags.
func (p PaymentAccountStatus) State() AccountState {
	switch {
	case !p.Connected:
		return AccountNotConnected
	case !p.OnboardingComplete:
		return AccountOnboardingIncomplete
	case !p.ChargesEnabled:
		return AccountNeedsVerification
	default:
		return AccountActive
	}
}

// ConnectLink is the response to an onboarding request.
type ConnectLink struct {
	OnboardingURL string `json:"onboarding_url"`
	AccountID     string `json:"account_id"`
}

// DashboardLink is the hosted payment dashboard login link.
type DashboardLink struct {
	AccountURL string `json:"account_url"`
}

// CheckoutSession is the handle to a hosted checkout page.
type CheckoutSession struct {
	ClientSecret string `json:"clientSecret"`
}

// SessionStatus resolves a checkout session after the redirect back.
type SessionStatus struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
}

// RefundResult reports a participation cancellation.
type RefundResult struct {
	RefundAmountCents int    `json:"refund_amount_cents"`
	Message           string `json:"message"`
}
