package domain

import "time"

type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Identity is the authenticated caller attached to a request after
// session resolution.
type Identity struct {
	UserID string `json:"userID"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}
