package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionGateCachesProbeResult(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.True(t, h.gate.Allowed(ctx))
	for i := 0; i < 10; i++ {
		assert.True(t, h.gate.Allowed(ctx))
	}
	assert.Equal(t, int64(1), h.api.probeCalls.Load(),
		"repeated gate checks inside the staleness window hit the cache")
}

func TestSessionGateNeverErrorsOnDeadBackend(t *testing.T) {
	// Unreachable backend: the gate folds the failure into false.
	h := newHarness(t)
	h.api.srv.Close()
	assert.False(t, h.gate.Allowed(context.Background()))
}

func TestMarkAuthenticatedSkipsProbe(t *testing.T) {
	h := newHarness(t)
	h.gate.MarkAuthenticated(true)

	assert.True(t, h.gate.Allowed(context.Background()))
	assert.Equal(t, int64(0), h.api.probeCalls.Load(),
		"a freshly seeded answer needs no probe")
}

func TestInvalidateForcesReprobe(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.True(t, h.gate.Allowed(ctx))
	h.api.setSession(false)
	assert.True(t, h.gate.Allowed(ctx), "stale answer persists until invalidated")

	h.gate.Invalidate()
	// Invalidation marks the entry stale; the cached value is still served
	// while the re-probe happens in the background, so poll until it lands.
	assert.Eventually(t, func() bool {
		return !h.gate.Allowed(ctx)
	}, eventuallyTimeout, eventuallyTick)
}

func TestLogoutClosesGate(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	require.True(t, h.gate.Allowed(ctx))

	h.api.setSession(false)
	h.gate.MarkAuthenticated(false)
	assert.False(t, h.gate.Allowed(ctx))
}
