package infra

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errRelay = errors.New("smtp relay down")

func failingCB(t *testing.T, failures int) *CircuitBreaker {
	t.Helper()
	cb := NewCircuitBreaker(BreakerConfig{
		FailureThreshold: 3,
		SuccessThreshold: 2,
		OpenTimeout:      50 * time.Millisecond,
	})
	for i := 0; i < failures; i++ {
		_ = cb.Execute(func() error { return errRelay })
	}
	return cb
}

func TestCircuitBreaker_StartsClosed(t *testing.T) {
	cb := NewCircuitBreaker(DefaultBreakerConfig())
	assert.Equal(t, BreakerClosed, cb.State())
	assert.NoError(t, cb.Execute(func() error { return nil }))
}

func TestCircuitBreaker_TripsAfterThreshold(t *testing.T) {
	cb := failingCB(t, 2)
	assert.Equal(t, BreakerClosed, cb.State(), "below threshold stays closed")

	_ = cb.Execute(func() error { return errRelay })
	assert.Equal(t, BreakerOpen, cb.State())

	err := cb.Execute(func() error {
		t.Fatal("must not be invoked while open")
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb := failingCB(t, 2)
	assert.NoError(t, cb.Execute(func() error { return nil }))

	// The streak restarted; two more failures must not trip it.
	_ = cb.Execute(func() error { return errRelay })
	_ = cb.Execute(func() error { return errRelay })
	assert.Equal(t, BreakerClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	cb := failingCB(t, 3)
	assert.Equal(t, BreakerOpen, cb.State())

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, BreakerHalfOpen, cb.State())

	// Two clean sends close the circuit again.
	assert.NoError(t, cb.Execute(func() error { return nil }))
	assert.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, BreakerClosed, cb.State())
}

func TestCircuitBreaker_FailedTrialReopens(t *testing.T) {
	cb := failingCB(t, 3)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, BreakerHalfOpen, cb.State())

	_ = cb.Execute(func() error { return errRelay })
	assert.Equal(t, BreakerOpen, cb.State())
}
