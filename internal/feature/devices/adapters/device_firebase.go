// Package adapters provides repository implementations for the devices feature.
package adapters

import (
	"context"

	firebasedb "firebase.google.com/go/v4/db"

	"energy_backend/internal/feature/devices/usecase"
)

// devicesPath is the realtime-store node holding the device map.
const devicesPath = "devices"

// deviceFirebase implements DeviceRepository against the realtime store.
type deviceFirebase struct {
	ref *firebasedb.Ref
}

var _ usecase.DeviceRepository = (*deviceFirebase)(nil)

// NewDeviceFirebase creates a deviceFirebase rooted at the devices node.
func NewDeviceFirebase(client *firebasedb.Client) *deviceFirebase {
	return &deviceFirebase{ref: client.NewRef(devicesPath)}
}

// All reads the full device map. A missing node unmarshals to a nil map.
func (r *deviceFirebase) All(ctx context.Context) (map[string]string, error) {
	var devices map[string]string
	if err := r.ref.Get(ctx, &devices); err != nil {
		return nil, err
	}
	return devices, nil
}

// Get reads a single device state. A missing child unmarshals to nil.
func (r *deviceFirebase) Get(ctx context.Context, id string) (*string, error) {
	var state *string
	if err := r.ref.Child(id).Get(ctx, &state); err != nil {
		return nil, err
	}
	return state, nil
}

// Set overwrites a single device state.
func (r *deviceFirebase) Set(ctx context.Context, id, state string) error {
	return r.ref.Child(id).Set(ctx, state)
}

// SetAll applies every entry as one atomic multi-path update on the devices node.
func (r *deviceFirebase) SetAll(ctx context.Context, states map[string]string) error {
	updates := make(map[string]any, len(states))
	for id, state := range states {
		updates[id] = state
	}
	return r.ref.Update(ctx, updates)
}
