package globaltracer

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/tracerresolver/tracer"
)

func newClient(t *testing.T) *tracer.TracerClient {
	t.Helper()
	c, err := tracer.NewClient(tracer.Config{ServiceName: "global-test"})
	require.NoError(t, err)
	return c
}

func TestRegistry_Empty(t *testing.T) {
	t.Parallel()
	r := New()

	assert.False(t, r.IsRegistered())
	got, ok := r.TryGet()
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.True(t, tracer.IsNoop(r.Get()))
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()
	r := New()
	client := newClient(t)

	require.NoError(t, r.Register(client))

	assert.True(t, r.IsRegistered())
	got, ok := r.TryGet()
	require.True(t, ok)
	assert.Same(t, client, got)
	assert.Same(t, client, r.Get())
}

func TestRegistry_RegisterNil(t *testing.T) {
	t.Parallel()
	r := New()
	assert.ErrorIs(t, r.Register(nil), ErrNilTracer)
	assert.False(t, r.IsRegistered())
}

func TestRegistry_SecondRegistrationRejected(t *testing.T) {
	t.Parallel()
	r := New()
	first := newClient(t)
	require.NoError(t, r.Register(first))

	assert.ErrorIs(t, r.Register(tracer.Noop()), ErrAlreadyRegistered)
	assert.Same(t, first, r.Get())
}

func TestRegistry_Reset(t *testing.T) {
	t.Parallel()
	r := New()
	require.NoError(t, r.Register(tracer.Noop()))
	r.Reset()

	assert.False(t, r.IsRegistered())
	require.NoError(t, r.Register(newClient(t)))
}

func TestRegistry_ConcurrentRegisterHasOneWinner(t *testing.T) {
	t.Parallel()
	r := New()
	var (
		wg   sync.WaitGroup
		wins atomic.Int32
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if r.Register(tracer.Noop()) == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}

func TestPackageFunctionsUseDefault(t *testing.T) {
	Default.Reset()
	t.Cleanup(Default.Reset)

	assert.False(t, IsRegistered())
	require.NoError(t, Register(tracer.Noop()))
	assert.True(t, IsRegistered())

	got, ok := TryGet()
	assert.True(t, ok)
	assert.Same(t, tracer.Noop(), got)
	assert.Same(t, tracer.Noop(), Get())
}
