package workout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymcycle/pkg"
)

const checkinLockKeyPrefix = "gymcycle::checkin-lock::"

var ErrCheckinInProgress = errors.New("another check-in for this day is in progress")

// only delete the key if we still own it
const releaseScript = `if redis.call("get", KEYS[1]) == ARGV[1] then return redis.call("del", KEYS[1]) else return 0 end`

// RedisCheckinLock serializes the check-then-append sequence for one date
// across requests and replicas.
type RedisCheckinLock struct {
	rdb *redis.Client
	ttl time.Duration

	// used for tests
	RandStringFunc func(s int) (string, error)
}

func NewRedisCheckinLock(rdb *redis.Client, ttl time.Duration) *RedisCheckinLock {
	return &RedisCheckinLock{
		rdb:            rdb,
		ttl:            ttl,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func checkinLockKey(date string) string {
	return checkinLockKeyPrefix + date
}

// Acquire takes the lock for the date. ErrCheckinInProgress is returned when someone else holds it.
func (l *RedisCheckinLock) Acquire(ctx context.Context, date string) (func(), error) {
	token, err := l.RandStringFunc(16)
	if err != nil {
		return nil, fmt.Errorf("generate lock token: %w", err)
	}

	key := checkinLockKey(date)
	acquired, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("set lock %s: %w", key, err)
	}
	if !acquired {
		return nil, ErrCheckinInProgress
	}

	release := func() {
		// the request ctx might be cancelled already
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := l.rdb.Eval(releaseCtx, releaseScript, []string{key}, token).Err(); err != nil {
			log.Errorf("release check-in lock %s: %s", key, err)
		}
	}
	return release, nil
}
