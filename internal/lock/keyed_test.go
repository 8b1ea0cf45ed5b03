package lock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
)

func TestAcquireAndRelease(t *testing.T) {
	l := NewKeyedLocker(100 * time.Millisecond)

	release, err := l.Acquire(context.Background(), BarberKey(1))
	require.NoError(t, err)
	release()

	// liberou, dá para pegar de novo
	release, err = l.Acquire(context.Background(), BarberKey(1))
	require.NoError(t, err)
	release()
}

func TestAcquireTimesOut(t *testing.T) {
	l := NewKeyedLocker(50 * time.Millisecond)

	release, err := l.Acquire(context.Background(), BarberKey(1))
	require.NoError(t, err)
	defer release()

	_, err = l.Acquire(context.Background(), BarberKey(1))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeLockTimeout))
}

func TestDifferentKeysDoNotBlock(t *testing.T) {
	l := NewKeyedLocker(50 * time.Millisecond)

	r1, err := l.Acquire(context.Background(), BarberKey(1))
	require.NoError(t, err)
	defer r1()

	// barbeiro diferente entra na hora
	r2, err := l.Acquire(context.Background(), BarberKey(2))
	require.NoError(t, err)
	defer r2()

	// o lock de cargo é independente das agendas
	r3, err := l.Acquire(context.Background(), RoleKey)
	require.NoError(t, err)
	defer r3()
}

func TestAcquireHonoursContextCancel(t *testing.T) {
	l := NewKeyedLocker(5 * time.Second)

	release, err := l.Acquire(context.Background(), BarberKey(1))
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = l.Acquire(ctx, BarberKey(1))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeLockTimeout))
}

func TestLockIsSerialisedUnderContention(t *testing.T) {
	l := NewKeyedLocker(time.Second)

	release, err := l.Acquire(context.Background(), BarberKey(7))
	require.NoError(t, err)

	acquired := make(chan struct{})
	go func() {
		r, err := l.Acquire(context.Background(), BarberKey(7))
		if err == nil {
			close(acquired)
			r()
		}
	}()

	select {
	case <-acquired:
		t.Fatal("second acquire should wait for release")
	case <-time.After(50 * time.Millisecond):
	}

	release()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second acquire should succeed after release")
	}
}
