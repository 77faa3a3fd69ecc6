package models

import "time"

// Session maps an opaque cookie token to a signed-in username. Sessions
// have no expiry; they live until explicit logout.
type Session struct {
	Token     string    `json:"token" example:"a1b2c3d4-e5f6-7890-1234-567890abcdef"`
	Username  string    `json:"username" example:"alice"`
	CreatedAt time.Time `json:"created_at"`
}
