package domain

import "errors"

var (
	ErrIncompleteRecord          = errors.New("incomplete window record")
	ErrMalformedSessionFile      = errors.New("malformed session file")
	ErrNotConnected              = errors.New("not connected to a session manager")
	ErrSaveFailed                = errors.New("failed to save session")
	ErrSaveNotFound              = errors.New("save not found in catalog")
	ErrSessionManagerUnavailable = errors.New("session manager unavailable")
)
