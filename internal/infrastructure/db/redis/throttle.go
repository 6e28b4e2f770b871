package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultThrottleWindow = 15 * time.Minute

// ResetThrottle rate limits password-reset mail per address, backed by
// Redis. Key format: pwreset:<email>. The first request inside a window
// claims the key; later ones are refused until it expires.
type ResetThrottle struct {
	client *redis.Client
	window time.Duration
}

// NewResetThrottle creates a ResetThrottle with the given window.
// If window <= 0, defaultThrottleWindow is used.
func NewResetThrottle(client *redis.Client, window time.Duration) *ResetThrottle {
	if window <= 0 {
		window = defaultThrottleWindow
	}
	return &ResetThrottle{client: client, window: window}
}

// Allow reports whether a reset mail may be sent to this address now.
// Claiming and checking happen in one SETNX round trip.
func (t *ResetThrottle) Allow(ctx context.Context, email string) (bool, error) {
	ok, err := t.client.SetNX(ctx, t.key(email), "1", t.window).Result()
	if err != nil {
		return false, fmt.Errorf("reset throttle: %w", err)
	}
	return ok, nil
}

func (t *ResetThrottle) key(email string) string {
	return "pwreset:" + email
}
