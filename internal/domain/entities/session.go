package entities

import "time"

// Session ties a Discord user to a backend bearer token and the last
// known user record. The cached user is a fallback identity source,
// not authoritative.
type Session struct {
	DiscordUserID string
	Token         string
	User          *User
	UpdatedAt     time.Time
}

// LoggedIn reports whether the session carries a token.
func (s *Session) LoggedIn() bool {
	return s != nil && s.Token != ""
}

// PendingJoin is the ephemeral marker written before handing a user off
// to the hosted checkout page. Consumed exactly once on return,
// regardless of the payment outcome.
type PendingJoin struct {
	CorrelationID string
	DiscordUserID string
	EventID       string
	CreatedAt     time.Time
}

// LoginResponse is the backend's answer to a successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}
