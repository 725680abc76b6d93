package tui

import "errors"

// ErrMissingContactService is returned when the contact service port is nil.
var ErrMissingContactService = errors.New("contact service is required")
