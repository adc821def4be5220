package domain

import "time"

// APIKey is the shared secret that authorizes the ingestion and admin
// endpoints. Keys are provisioned out of band and not rotated automatically.
type APIKey struct {
	ID        string     `json:"id"`
	Key       string     `json:"-"`
	Name      string     `json:"name"`
	IsActive  bool       `json:"is_active"`
	LastUsed  *time.Time `json:"last_used,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
