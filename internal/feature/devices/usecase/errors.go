// Package usecase implements the business logic for device control.
package usecase

import "errors"

// ErrInvalidState is returned when a requested device state is not ON or OFF.
var ErrInvalidState = errors.New("invalid state, use ON or OFF")
