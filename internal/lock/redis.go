package lock

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
)

// RedisLocker: variante distribuída para quando houver mais de uma
// réplica da API apontando para o mesmo banco. SET NX com TTL; o
// release só apaga se o token ainda for o nosso.
type RedisLocker struct {
	client  *redis.Client
	prefix  string
	ttl     time.Duration
	maxWait time.Duration
	retry   time.Duration
}

func NewRedisLocker(client *redis.Client, maxWait time.Duration) *RedisLocker {
	return &RedisLocker{
		client:  client,
		prefix:  "booking:lock:",
		ttl:     30 * time.Second,
		maxWait: maxWait,
		retry:   50 * time.Millisecond,
	}
}

var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
    return redis.call("del", KEYS[1])
end
return 0
`)

func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	full := l.prefix + key
	token := uuid.NewString()

	deadline := time.Now().Add(l.maxWait)

	for {
		ok, err := l.client.SetNX(ctx, full, token, l.ttl).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			return func() {
				releaseScript.Run(context.Background(), l.client, []string{full}, token)
			}, nil
		}

		if time.Now().After(deadline) {
			return nil, httperr.ErrBusiness(httperr.CodeLockTimeout)
		}

		select {
		case <-time.After(l.retry):
		case <-ctx.Done():
			return nil, httperr.ErrBusiness(httperr.CodeLockTimeout)
		}
	}
}

var _ Locker = (*RedisLocker)(nil)
