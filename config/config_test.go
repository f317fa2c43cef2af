package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults with required secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.ServerPort)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, 4, cfg.FallbackConcurrency)
		assert.Empty(t, cfg.LLMAPIKey)
	})

	t.Run("missing jwt secret fails", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("dsn and redis addr", func(t *testing.T) {
		cfg := &Config{
			DBHost: "db", DBPort: "5433", DBUser: "fam", DBPassword: "pw", DBName: "famdb", DBSSLMode: "disable",
			RedisHost: "cache", RedisPort: "6380",
		}
		assert.Equal(t, "host=db port=5433 user=fam password=pw dbname=famdb sslmode=disable", cfg.DSN())
		assert.Equal(t, "cache:6380", cfg.RedisAddr())
	})
}
