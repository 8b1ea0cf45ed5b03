package lock

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
)

// KeyedLocker: lock exclusivo por chave, em processo. Chaves
// diferentes nunca se bloqueiam; a mesma chave é estritamente serial.
type KeyedLocker struct {
	mu      sync.Mutex
	slots   map[string]chan struct{}
	maxWait time.Duration
}

func NewKeyedLocker(maxWait time.Duration) *KeyedLocker {
	return &KeyedLocker{
		slots:   make(map[string]chan struct{}),
		maxWait: maxWait,
	}
}

func (l *KeyedLocker) slot(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.slots[key]
	if !ok {
		s = make(chan struct{}, 1)
		l.slots[key] = s
	}
	return s
}

func (l *KeyedLocker) Acquire(ctx context.Context, key string) (func(), error) {
	s := l.slot(key)

	timer := time.NewTimer(l.maxWait)
	defer timer.Stop()

	select {
	case s <- struct{}{}:
		return func() { <-s }, nil
	case <-timer.C:
		return nil, httperr.ErrBusiness(httperr.CodeLockTimeout)
	case <-ctx.Done():
		return nil, httperr.ErrBusiness(httperr.CodeLockTimeout)
	}
}

var _ Locker = (*KeyedLocker)(nil)
