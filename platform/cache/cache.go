// Package cache opens the redis client used for cache-aside lookups.
package cache

import (
	"context"
	"fmt"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/notes-server/sys"
)

// Open creates the client and makes sure redis answers a ping.
func Open(ctx context.Context, cfg sys.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.ConnectionURL,
		Username: cfg.Cache.User,
		Password: cfg.Cache.Pass,
	})

	if err := StatusCheck(ctx, rdb, cfg); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

// StatusCheck pings redis within the configured ping timeout.
func StatusCheck(ctx context.Context, rdb *redis.Client, cfg sys.Config) error {
	rdsCtx, rdsCancel := context.WithTimeout(ctx, cfg.Cache.PingTimeout)
	defer rdsCancel()
	if err := rdb.Ping(rdsCtx).Err(); err != nil {
		return fmt.Errorf("could not connect to redis: %w", err)
	}
	return nil
}
