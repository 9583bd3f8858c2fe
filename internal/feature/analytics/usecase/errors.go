// Package usecase implements the business logic for analytics readouts.
package usecase

import "errors"

// ErrNotFound is returned when a requested analytics value is absent from the store.
var ErrNotFound = errors.New("value not found")
