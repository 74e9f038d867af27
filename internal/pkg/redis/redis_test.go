package redis_test

import (
	"testing"

	"marketplace-service/config"
	"marketplace-service/internal/pkg/redis"

	"github.com/stretchr/testify/assert"
)

func TestSetupClientUnreachable(t *testing.T) {
	cfg := &config.RedisConfig{Host: "127.0.0.1", Port: "1"}

	assert.NotPanics(t, func() {
		client := redis.SetupClient(cfg)
		assert.NotNil(t, client)
		assert.Equal(t, "127.0.0.1:1", client.Options().Addr)
		client.Close()
	})
}
