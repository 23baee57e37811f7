package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func pingResult(err error) func(ctx context.Context) *redis.StatusCmd {
	return func(ctx context.Context) *redis.StatusCmd {
		cmd := redis.NewStatusCmd(ctx)
		if err != nil {
			cmd.SetErr(err)
		}
		return cmd
	}
}

func restoreRedisNewClient() {
	redisNewClient = func(opt *redis.Options) Cache {
		return redis.NewClient(opt)
	}
}

func TestNewRedisClient(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restoreRedisNewClient)
		var gotOpt *redis.Options
		client := &FakeCache{PingFn: pingResult(nil)}
		redisNewClient = func(opt *redis.Options) Cache {
			gotOpt = opt
			return client
		}

		c, err := NewRedisClient("localhost:6379", "pw", 2)
		require.NoError(t, err)
		require.Equal(t, Cache(client), c)
		require.Equal(t, "localhost:6379", gotOpt.Addr)
		require.Equal(t, "pw", gotOpt.Password)
		require.Equal(t, 2, gotOpt.DB)
	})

	t.Run("ping failure", func(t *testing.T) {
		t.Cleanup(restoreRedisNewClient)
		redisNewClient = func(*redis.Options) Cache {
			return &FakeCache{PingFn: pingResult(errors.New("connection refused"))}
		}

		_, err := NewRedisClient("localhost:6379", "", 0)
		require.Error(t, err)
	})
}

func TestFakeCacheDefaults(t *testing.T) {
	f := &FakeCache{}
	require.NoError(t, f.Close())
	require.Panics(t, func() { f.Get(context.Background(), "k") })
	require.Panics(t, func() { f.Set(context.Background(), "k", "v", time.Second) })
	require.Panics(t, func() { f.Ping(context.Background()) })
}
