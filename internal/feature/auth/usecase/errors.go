// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or phone number.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned when attempting to create a user whose
	// email or phone number already exists.
	ErrDuplicateUser = errors.New("email or phone number already in use")

	// ErrInvalidCredentials is returned when the email/password pair does not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidOTP is returned when the presented passcode does not match the pending one.
	ErrInvalidOTP = errors.New("invalid otp")

	// ErrOTPExpired is returned when the pending passcode is past its expiry.
	ErrOTPExpired = errors.New("otp expired")
)
