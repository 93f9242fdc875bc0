package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, "college", cfg.Database.Name)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.False(t, cfg.Stats.CacheEnabled)
	assert.Equal(t, time.Minute, cfg.Stats.CacheTTL)
	assert.Equal(t, 4, cfg.Stats.Concurrency)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Nil(t, cfg.CORS.AllowedOrigins)
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("DB_QUERY_TIMEOUT", "not-a-duration")
	v.Set("STATS_CACHE_TTL", "30s")
	v.Set("STATS_CONCURRENCY", 0)
	v.Set("ALLOWED_ORIGINS", "http://a.test, ,http://b.test ")

	cfg := fromViper(v)

	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 30*time.Second, cfg.Stats.CacheTTL)
	assert.Equal(t, 1, cfg.Stats.Concurrency)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
}
