package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("should fill defaults for empty fields", func(t *testing.T) {
		cfg := NewConfig("", "token", "secret", "", "")

		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "en", cfg.Language)
		assert.Equal(t, "matebot[bot]", cfg.BotUser)
	})

	t.Run("should keep explicit values", func(t *testing.T) {
		cfg := NewConfig(":9090", "token", "secret", "es", "otro-bot[bot]")

		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, "es", cfg.Language)
		assert.Equal(t, "otro-bot[bot]", cfg.BotUser)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("should accept a complete config", func(t *testing.T) {
		cfg := NewConfig("", "token", "secret", "", "")
		assert.NoError(t, cfg.Validate())
	})

	t.Run("should require a github token", func(t *testing.T) {
		cfg := NewConfig("", "", "secret", "", "")
		assert.Error(t, cfg.Validate())
	})

	t.Run("should require a webhook secret", func(t *testing.T) {
		cfg := NewConfig("", "token", "", "", "")
		assert.Error(t, cfg.Validate())
	})
}

func TestConfig_BotIdentity(t *testing.T) {
	cfg := NewConfig("", "token", "secret", "", "mi-bot[bot]")
	identity := cfg.BotIdentity()

	require.Equal(t, "mi-bot[bot]", identity.Login)
	assert.Equal(t, "Bot", identity.Type)
}
