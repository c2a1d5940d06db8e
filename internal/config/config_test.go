package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Applies defaults for missing keys", func(t *testing.T) {
		// Given: a config file with only the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: loading it
		conf, err := Load(path)

		// Then: every other field carries its default
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, 60*time.Second, conf.HTTP.WriteTimeout)
		assert.Equal(t, APICompletion, conf.AI.API)
		assert.Equal(t, 3, conf.AI.MaxTokens)
		assert.Equal(t, "O", conf.AI.Mark)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, 24*time.Hour, conf.Redis.TTL)
	})

	t.Run("Reads nested sections", func(t *testing.T) {
		// Given: a config file with ai and redis sections
		path := writeConfig(t, `
ai:
  api: chat
  model: gpt-4o-mini
  max-tokens: 5
  mark: X
redis:
  enabled: true
  host: cache
  port: "6380"
`)

		// When: loading it
		conf, err := Load(path)

		// Then: the values are read from the file
		require.NoError(t, err)
		assert.Equal(t, APIChat, conf.AI.API)
		assert.Equal(t, "gpt-4o-mini", conf.AI.Model)
		assert.Equal(t, 5, conf.AI.MaxTokens)
		assert.Equal(t, "X", conf.AI.Mark)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Env overrides the file", func(t *testing.T) {
		// Given: a file model and an env model
		path := writeConfig(t, "ai:\n  model: from-file\n")
		t.Setenv("AI_MODEL", "from-env")

		// When: loading it
		conf, err := Load(path)

		// Then: the env value wins
		require.NoError(t, err)
		assert.Equal(t, "from-env", conf.AI.Model)
	})

	t.Run("Rejects unknown api", func(t *testing.T) {
		// Given: an unsupported api flavour
		path := writeConfig(t, "ai:\n  api: grpc\n")

		// When: loading it
		_, err := Load(path)

		// Then: an error is returned
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ai.api")
	})

	t.Run("Rejects a missing file", func(t *testing.T) {
		// When: loading a path that does not exist
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))

		// Then: an error is returned
		require.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{AI: AI{API: APICompletion, Model: "m", MaxTokens: 3, Mark: "O"}}
	}

	t.Run("Accepts a valid config", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("Rejects non-positive max tokens", func(t *testing.T) {
		conf := valid()
		conf.AI.MaxTokens = 0

		assert.Error(t, conf.Validate())
	})

	t.Run("Rejects an unknown mark", func(t *testing.T) {
		conf := valid()
		conf.AI.Mark = "Z"

		assert.Error(t, conf.Validate())
	})

	t.Run("Rejects an empty model", func(t *testing.T) {
		conf := valid()
		conf.AI.Model = ""

		assert.Error(t, conf.Validate())
	})
}
