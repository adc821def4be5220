package domain

import "time"

// PreferenceWeekly marks a subscriber as wanting the weekly digest.
const PreferenceWeekly = "weekly"

// Subscriber represents a newsletter subscriber record.
//
// Lifecycle: created unverified+active, verified by consuming the single-use
// verify token, deactivated by the stable unsubscribe token. A re-subscribe on
// an inactive record reissues the verify token and requires re-verification.
type Subscriber struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	FirstName        *string    `json:"first_name,omitempty"`
	LastName         *string    `json:"last_name,omitempty"`
	IsVerified       bool       `json:"is_verified"`
	IsActive         bool       `json:"is_active"`
	VerifyToken      *string    `json:"-"`
	UnsubscribeToken string     `json:"-"`
	Preferences      []string   `json:"preferences"`
	LastEmailSent    *time.Time `json:"last_email_sent,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// WantsWeekly reports whether the subscriber opted into the weekly digest.
func (s *Subscriber) WantsWeekly() bool {
	for _, p := range s.Preferences {
		if p == PreferenceWeekly {
			return true
		}
	}
	return false
}
