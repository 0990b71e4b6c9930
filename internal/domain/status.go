package domain

// Participant statuses as the backend reports them.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Checkout session outcome reported by the payment provider.
const (
	CheckoutComplete = "complete"
)
