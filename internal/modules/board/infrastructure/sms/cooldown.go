package sms

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCooldown suppresses duplicate SMS sends for the same key inside a
// fixed window, using SETNX so the first send in a window wins across
// service instances. Redis errors fail open: the board would rather send a
// duplicate SMS than silently drop one.
type RedisCooldown struct {
	client *redis.Client
	window time.Duration
}

func NewRedisCooldown(client *redis.Client, window time.Duration) *RedisCooldown {
	if window <= 0 {
		window = 5 * time.Minute
	}
	return &RedisCooldown{client: client, window: window}
}

func (c *RedisCooldown) Allow(ctx context.Context, key string) bool {
	ok, err := c.client.SetNX(ctx, key, 1, c.window).Result()
	if err != nil {
		log.Printf("sms: cooldown check failed, allowing send: %v", err)
		return true
	}
	return ok
}
