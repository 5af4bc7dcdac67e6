package redis

import (
	"testing"
	"time"

	"predictBot/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	opts := Options(config.RedisConfig{
		RedisHost:     "cache.internal",
		RedisPort:     "6380",
		RedisPassword: "pw",
		RedisDB:       2,
		PoolSize:      20,
		DialTimeout:   2 * time.Second,
	})

	assert.Equal(t, "cache.internal:6380", opts.Addr)
	assert.Equal(t, "pw", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 20, opts.PoolSize)
	assert.Equal(t, 4, opts.MinIdleConns)
	assert.Equal(t, 2*time.Second, opts.DialTimeout)
}

func TestOptions_Defaults(t *testing.T) {
	opts := Options(config.RedisConfig{RedisHost: "localhost", RedisPort: "6379"})

	assert.Equal(t, 10, opts.PoolSize)
	assert.Equal(t, 5*time.Second, opts.DialTimeout)
}

func TestClose_NilClient(t *testing.T) {
	assert.NoError(t, Close(nil))
}
