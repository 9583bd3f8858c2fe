// Package entity defines the domain entities for the analytics feature.
package entity

import "time"

// Consumption is one recorded month of energy usage in the relational store.
type Consumption struct {
	// ID is the unique identifier, ascending in insertion order.
	ID uint `gorm:"primaryKey"`

	// Month labels the period the reading covers, e.g. "2025-08".
	Month string `gorm:"size:32;not null"`

	// KWh is the consumed energy for the period.
	KWh float64 `gorm:"not null"`

	// CreatedAt is the timestamp when the row was recorded.
	CreatedAt time.Time
}
