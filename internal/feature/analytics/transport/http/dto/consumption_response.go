// Package dto defines data transfer objects for the analytics feature's HTTP transport layer.
package dto

// ConsumptionRow is one consumption record as served by /api/consumption.
type ConsumptionRow struct {
	ID    uint    `json:"id"`
	Month string  `json:"month"`
	KWh   float64 `json:"kwh"`
}
