package model

import (
	"time"
)

// Session is a server-side bearer token record. ExpiredAt is advisory:
// resolution goes by token lookup alone.
type Session struct {
	UserID    string    `json:"userId"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiredAt time.Time `json:"expiredAt"`
}
