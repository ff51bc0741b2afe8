// Package redis keeps the console's short-lived state: sessions, the
// per-session notification lists, export jobs with their files, and the
// export dedup slots.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	dialTimeout     = 5 * time.Second
	clientName      = "lead-console"
	maxPoolIdleTime = 5 * time.Minute
)

// Config points the console at its Redis instance.
type Config struct {
	Addr     string
	Password string
	DB       int
	Timeout  time.Duration
}

// Connect opens the console's state store and refuses to start when it is
// unreachable within the dial timeout.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	wait := cfg.Timeout
	if wait <= 0 {
		wait = dialTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:            cfg.Addr,
		Password:        cfg.Password,
		DB:              cfg.DB,
		ClientName:      clientName,
		DialTimeout:     wait,
		ConnMaxIdleTime: maxPoolIdleTime,
	})

	readyCtx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()
	if err := client.Ping(readyCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("console state store at %s unreachable: %w", cfg.Addr, err)
	}
	return client, nil
}
