package domain

import "time"

type Session struct {
	ID        string    `json:"-"`
	Token     string    `json:"token"`
	UserID    string    `json:"-"`
	ExpiresAt time.Time `json:"expiredAt"`
	CreatedAt time.Time `json:"-"`
}
