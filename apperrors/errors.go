package apperrors

import (
	"errors"

	"github.com/sankalpa008/lost-and-found/constants"
)

// Sentinel errors for the failure taxonomy. Services return these,
// controllers match with errors.Is and map them to HTTP statuses.
// Anything else is treated as a store failure: logged server-side and
// surfaced as a generic message.
var (
	ErrItemNotFound       = errors.New(constants.ErrMsgItemNotFound)
	ErrUserNotFound       = errors.New(constants.ErrMsgUserNotFound)
	ErrNoSession          = errors.New("no active session")
	ErrUnauthorized       = errors.New(constants.ErrMsgUnauthorized)
	ErrEmailTaken         = errors.New(constants.ErrMsgEmailTaken)
	ErrInvalidCredentials = errors.New(constants.ErrMsgBadCredentials)
)
