package database

import "errors"

// ErrNotFound is returned by repository lookups when no record matches.
// Callers distinguish it from persistence failures with errors.Is.
var ErrNotFound = errors.New("record not found")
