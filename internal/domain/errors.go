package domain

import "errors"

// Error is a domain error carrying a stable code used for i18n lookup.
type Error struct {
	code string
	msg  string
}

func (e *Error) Error() string { return e.msg }

// ErrorCode returns the stable code of e.
func (e *Error) ErrorCode() string { return e.code }

func newError(code, msg string) *Error {
	return &Error{code: code, msg: msg}
}

// Domain errors.
var (
	ErrNotLoggedIn      = newError("not_logged_in", "not logged in")
	ErrSessionExpired   = newError("session_expired", "session expired, please log in again")
	ErrEventNotFound    = newError("event_not_found", "event not found")
	ErrMealNotFound     = newError("meal_not_found", "meal not found")
	ErrUserNotFound     = newError("user_not_found", "user not found")
	ErrPaymentsNotReady = newError("payments_not_ready", "payment account is not ready to accept payments")
	ErrNoMealSelected   = newError("no_meal_selected", "no meal selected")
	ErrDraftIncomplete  = newError("draft_incomplete", "event details are incomplete")
	ErrActionInFlight   = newError("action_in_flight", "a previous action on this row is still running")
	ErrNoWizardSession  = newError("no_wizard_session", "no event creation in progress")
	ErrInvalidSlots     = newError("invalid_slots", "maximum participants must be a positive number")
	ErrInvalidDateTime  = newError("invalid_datetime", "date must be like 2026-03-14 19:00")
)

// Code extracts the domain error code from err, or "" when err carries none.
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.ErrorCode()
	}
	return ""
}
