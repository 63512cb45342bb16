package domain

import "time"

// Auth activity actions.
const (
	ActivityRegister       = "register"
	ActivityLogin          = "login"
	ActivityPasswordChange = "password_change"
)

// AuthActivity is an append-only audit record of an authentication event.
// It feeds observability only; no authorization decision reads it.
type AuthActivity struct {
	Action  string    `json:"action"`
	Email   string    `json:"email"`
	Success bool      `json:"success"`
	Note    string    `json:"note,omitempty"`
	At      time.Time `json:"at"`
}
