package record

import (
	"context"
	"time"

	recorderrors "record-viewer/internal/record/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	UploadLockKey = "records:upload:lock"
	UploadLockTTL = 30 * time.Second
)

// UploadGuard serialises uploads beyond a single process. Acquire returns
// ErrUploadInProgress when another holder has the lock.
type UploadGuard interface {
	Acquire(ctx context.Context) (release func(), err error)
}

type localUploadGuard struct{}

// NewLocalUploadGuard relies on the viewer's own in-flight flag only.
func NewLocalUploadGuard() UploadGuard {
	return localUploadGuard{}
}

func (localUploadGuard) Acquire(context.Context) (func(), error) {
	return func() {}, nil
}

type redisUploadGuard struct {
	rdb *redis.Client
	key string
	ttl time.Duration
}

func NewRedisUploadGuard(rdb *redis.Client) UploadGuard {
	return &redisUploadGuard{rdb: rdb, key: UploadLockKey, ttl: UploadLockTTL}
}

// releaseScript deletes the lock only if we still own it.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func (g *redisUploadGuard) Acquire(ctx context.Context) (func(), error) {
	token := uuid.NewString()

	// Expiry pendek supaya lock hilang sendiri kalau proses crash
	ok, err := g.rdb.SetNX(ctx, g.key, token, g.ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, recorderrors.ErrUploadInProgress
	}

	return func() {
		_ = releaseScript.Run(context.WithoutCancel(ctx), g.rdb, []string{g.key}, token).Err()
	}, nil
}
