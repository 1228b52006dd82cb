package model

import "time"

// Family is the tenant boundary. Every user, chore, and reward belongs to
// exactly one family. The APIKey is the credential for the external
// integration surface and never changes after creation.
type Family struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	APIKey    string    `json:"apiKey"`
	CreatedAt time.Time `json:"createdAt"`
}
