// Package dto defines data transfer objects for the devices feature's HTTP transport layer.
package dto

// ToggleReq represents the request body for the device toggle endpoints.
// The state value itself is validated by the usecase, valid values are ON and OFF.
type ToggleReq struct {
	State string `json:"state" binding:"required"`
}
