package redis

import (
	"context"
	"fmt"

	"marketplace-service/config"
	"marketplace-service/internal/pkg/log"

	"github.com/redis/go-redis/v9"
)

func SetupClient(cfg *config.RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		log.GetLogger().Warn(ctx, "error ping redis", err)
	}

	return client
}
