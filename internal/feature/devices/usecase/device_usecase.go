package usecase

import (
	"context"
)

// Valid device states. The realtime store holds each device as a bare
// string scalar, one of these two values.
const (
	StateOn  = "ON"
	StateOff = "OFF"
)

// DeviceRepository abstracts the realtime store paths holding device states.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type DeviceRepository interface {
	// All returns the full device map. A missing node yields an empty map.
	All(ctx context.Context) (map[string]string, error)

	// Get returns the state of a single device, or nil when the id is absent.
	Get(ctx context.Context, id string) (*string, error)

	// Set unconditionally overwrites the state of a single device.
	Set(ctx context.Context, id, state string) error

	// SetAll writes every entry of states in one atomic multi-path update.
	SetAll(ctx context.Context, states map[string]string) error
}

// DeviceUsecase provides business logic for device control operations.
type DeviceUsecase struct {
	repo DeviceRepository
}

// NewDeviceUsecase creates a new DeviceUsecase with the given repository.
func NewDeviceUsecase(r DeviceRepository) *DeviceUsecase {
	return &DeviceUsecase{repo: r}
}

// List returns the full device map verbatim, never nil.
func (u *DeviceUsecase) List(ctx context.Context) (map[string]string, error) {
	devices, err := u.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	if devices == nil {
		devices = map[string]string{}
	}
	return devices, nil
}

// Get returns the state of a single device. An absent id is not an error;
// the returned pointer is nil.
func (u *DeviceUsecase) Get(ctx context.Context, id string) (*string, error) {
	return u.repo.Get(ctx, id)
}

// Set overwrites the state of a single device.
// Returns ErrInvalidState unless state is ON or OFF.
func (u *DeviceUsecase) Set(ctx context.Context, id, state string) error {
	if state != StateOn && state != StateOff {
		return ErrInvalidState
	}
	return u.repo.Set(ctx, id, state)
}

// SetAll writes the given state to every currently existing device key.
// An empty device map is a successful no-op. The write is a single atomic
// multi-path update, so no concurrent writer can observe a partial result.
func (u *DeviceUsecase) SetAll(ctx context.Context, state string) error {
	if state != StateOn && state != StateOff {
		return ErrInvalidState
	}
	devices, err := u.repo.All(ctx)
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		return nil
	}
	updates := make(map[string]string, len(devices))
	for id := range devices {
		updates[id] = state
	}
	return u.repo.SetAll(ctx, updates)
}
