// Package handler provides HTTP handlers for the devices feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"energy_backend/internal/feature/devices/transport/http/dto"
	"energy_backend/internal/feature/devices/usecase"
)

// DeviceUsecase defines the usecase for device control operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type DeviceUsecase interface {
	List(ctx context.Context) (map[string]string, error)
	Get(ctx context.Context, id string) (*string, error)
	Set(ctx context.Context, id, state string) error
	SetAll(ctx context.Context, state string) error
}

// DeviceHandler handles HTTP requests for device control.
type DeviceHandler struct {
	uc DeviceUsecase
}

// NewDeviceHandler creates a new DeviceHandler.
func NewDeviceHandler(uc DeviceUsecase) *DeviceHandler {
	return &DeviceHandler{uc: uc}
}

// List returns the full device map verbatim, an empty object when no
// devices exist.
func (h *DeviceHandler) List(c *gin.Context) {
	devices, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("list devices failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error while fetching devices"})
		return
	}
	c.JSON(http.StatusOK, devices)
}

// Get returns a single device keyed by its id. An absent id is not an
// error; its state is rendered as null.
func (h *DeviceHandler) Get(c *gin.Context) {
	id := c.Param("id")
	state, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		slog.Error("get device failed", "error", err, "device_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error while fetching device"})
		return
	}
	c.JSON(http.StatusOK, gin.H{id: state})
}

// Toggle overwrites a single device state.
// - 400 when the body is missing or the state is not ON/OFF
// - 500 on store failure
func (h *DeviceHandler) Toggle(c *gin.Context) {
	id := c.Param("id")
	var req dto.ToggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": usecase.ErrInvalidState.Error()})
		return
	}
	if err := h.uc.Set(c.Request.Context(), id, req.State); err != nil {
		if errors.Is(err, usecase.ErrInvalidState) {
			c.JSON(http.StatusBadRequest, gin.H{"error": usecase.ErrInvalidState.Error()})
			return
		}
		slog.Error("toggle device failed", "error", err, "device_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error while toggling device"})
		return
	}
	slog.Info("device toggled", "device_id", id, "state", req.State)
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id, "state": req.State})
}

// ToggleAll writes the same state to every existing device. An empty
// device map is a successful no-op.
func (h *DeviceHandler) ToggleAll(c *gin.Context) {
	var req dto.ToggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": usecase.ErrInvalidState.Error()})
		return
	}
	if err := h.uc.SetAll(c.Request.Context(), req.State); err != nil {
		if errors.Is(err, usecase.ErrInvalidState) {
			c.JSON(http.StatusBadRequest, gin.H{"error": usecase.ErrInvalidState.Error()})
			return
		}
		slog.Error("toggle all devices failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error while toggling devices"})
		return
	}
	slog.Info("all devices toggled", "state", req.State)
	c.JSON(http.StatusOK, gin.H{"success": true, "state": req.State})
}
