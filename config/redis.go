package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns nil when Redis is not configured or unreachable; the
// caller then runs on in-process fallbacks.
func ConnectRedis(ctx context.Context, c *Config) *redis.Client {
	var opt *redis.Options
	switch {
	case c.RedisURL != "":
		parsed, err := redis.ParseURL(c.RedisURL)
		if err != nil {
			log.Println("Failed to parse Redis URL:", err)
			log.Println("Running without redis")
			return nil
		}
		opt = parsed
	case c.RedisAddr != "":
		opt = &redis.Options{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       0,
		}
	default:
		log.Println("Redis not configured, running without redis")
		return nil
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := client.Ping(pingCtx).Result(); err != nil {
		log.Println("Redis connection failed:", err)
		log.Println("Running without redis")
		client.Close()
		return nil
	}

	log.Println("Redis connected")
	return client
}
