package domain

import "time"

// Session is an issued login: a signed token carrying the principal.
type Session struct {
	Token     string    `json:"token"`
	TokenID   string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	Principal Principal `json:"principal"`
}
