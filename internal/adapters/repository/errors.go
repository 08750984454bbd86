package repository

import "errors"

// Sentinel kinds for record store errors.
var (
	ErrEmptyID        = errors.New("record id must not be empty")
	ErrMemberNotFound = errors.New("member not found")
)
