package constants

import "time"

// Session cookie contract
const (
	SessionCookieName = "session"
	SessionTokenBytes = 32
	SessionTTL        = 7 * 24 * time.Hour
)

// User-facing error messages
const (
	ErrMsgItemNotFound   = "Item not found"
	ErrMsgUserNotFound   = "User not found"
	ErrMsgUnauthorized   = "Unauthorized"
	ErrMsgEmailTaken     = "Email already in use"
	ErrMsgBadCredentials = "Invalid email or password"
	ErrMsgUnexpected     = "Unexpected error"
	ErrMsgInvalidID      = "Invalid id"
	ErrMsgInvalidInput   = "Invalid input"
)

// Paths reachable without a session cookie
var PublicPaths = []string{"/", "/login", "/signup"}
