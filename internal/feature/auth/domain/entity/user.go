// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and the transient one-time
// passcode fields used by the phone verification flow.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// FullName is the user's display name.
	FullName string `gorm:"size:255;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// PhoneNumber is the user's phone number used by the OTP flow.
	// It must be unique across all users.
	PhoneNumber string `gorm:"uniqueIndex;size:32;not null"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// OTP is the pending one-time passcode, nil when none is pending.
	// OTP and OTPExpiry are set and cleared together.
	OTP *string `gorm:"size:6"`

	// OTPExpiry is the instant the pending passcode stops being valid.
	OTPExpiry *time.Time

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
