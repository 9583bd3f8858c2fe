package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDeviceRepository is an in-memory DeviceRepository.
type fakeDeviceRepository struct {
	states      map[string]string
	setAllCalls int
}

func (f *fakeDeviceRepository) All(ctx context.Context) (map[string]string, error) {
	return f.states, nil
}

func (f *fakeDeviceRepository) Get(ctx context.Context, id string) (*string, error) {
	state, ok := f.states[id]
	if !ok {
		return nil, nil
	}
	return &state, nil
}

func (f *fakeDeviceRepository) Set(ctx context.Context, id, state string) error {
	if f.states == nil {
		f.states = map[string]string{}
	}
	f.states[id] = state
	return nil
}

func (f *fakeDeviceRepository) SetAll(ctx context.Context, states map[string]string) error {
	f.setAllCalls++
	for id, state := range states {
		f.states[id] = state
	}
	return nil
}

func TestDeviceUsecase_List(t *testing.T) {
	t.Parallel()

	t.Run("returns the device map verbatim", func(t *testing.T) {
		repo := &fakeDeviceRepository{states: map[string]string{"light1": StateOn, "light2": StateOff}}
		uc := NewDeviceUsecase(repo)

		devices, err := uc.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"light1": StateOn, "light2": StateOff}, devices)
	})

	t.Run("missing node yields an empty map, not nil", func(t *testing.T) {
		uc := NewDeviceUsecase(&fakeDeviceRepository{})

		devices, err := uc.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, devices)
		assert.Empty(t, devices)
	})
}

func TestDeviceUsecase_Get(t *testing.T) {
	t.Parallel()

	repo := &fakeDeviceRepository{states: map[string]string{"light1": StateOn}}
	uc := NewDeviceUsecase(repo)

	state, err := uc.Get(context.Background(), "light1")
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, StateOn, *state)

	// an absent id is not an error
	state, err = uc.Get(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestDeviceUsecase_Set(t *testing.T) {
	t.Parallel()

	t.Run("rejects states outside ON/OFF", func(t *testing.T) {
		uc := NewDeviceUsecase(&fakeDeviceRepository{})

		for _, state := range []string{"on", "off", "TOGGLE", ""} {
			err := uc.Set(context.Background(), "light1", state)
			assert.ErrorIs(t, err, ErrInvalidState, "state %q must be rejected", state)
		}
	})

	t.Run("setting the same state twice is idempotent", func(t *testing.T) {
		repo := &fakeDeviceRepository{states: map[string]string{"light1": StateOff}}
		uc := NewDeviceUsecase(repo)

		require.NoError(t, uc.Set(context.Background(), "light1", StateOn))
		require.NoError(t, uc.Set(context.Background(), "light1", StateOn))
		assert.Equal(t, StateOn, repo.states["light1"])
	})
}

func TestDeviceUsecase_SetAll(t *testing.T) {
	t.Parallel()

	t.Run("maps every existing key and adds none", func(t *testing.T) {
		repo := &fakeDeviceRepository{states: map[string]string{
			"light1": StateOn,
			"light2": StateOff,
			"light3": StateOn,
		}}
		uc := NewDeviceUsecase(repo)

		require.NoError(t, uc.SetAll(context.Background(), StateOff))

		assert.Equal(t, map[string]string{
			"light1": StateOff,
			"light2": StateOff,
			"light3": StateOff,
		}, repo.states)
	})

	t.Run("empty device map is a successful no-op", func(t *testing.T) {
		repo := &fakeDeviceRepository{}
		uc := NewDeviceUsecase(repo)

		require.NoError(t, uc.SetAll(context.Background(), StateOff))
		assert.Zero(t, repo.setAllCalls, "no write must be issued for an empty map")
	})

	t.Run("rejects invalid state before touching the store", func(t *testing.T) {
		repo := &fakeDeviceRepository{states: map[string]string{"light1": StateOn}}
		uc := NewDeviceUsecase(repo)

		err := uc.SetAll(context.Background(), "dim")
		assert.ErrorIs(t, err, ErrInvalidState)
		assert.Zero(t, repo.setAllCalls)
	})
}
