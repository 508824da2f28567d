package redis

import (
	"context"
	"log"
	"time"

	"limo-booking-service/config"

	"github.com/redis/go-redis/v9"
)

func SetupClient(cfg *config.RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// processed-event markers and the places cache degrade gracefully
		log.Printf("redis unavailable at %s: %v", cfg.Addr(), err)
	}

	return client
}
