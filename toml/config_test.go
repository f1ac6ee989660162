package toml_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/docboost"
	"github.com/fwojciec/docboost/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := toml.LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
		require.NoError(t, err)
		assert.Equal(t, docboost.NewConfig(), cfg)
	})

	t.Run("empty path yields defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := toml.LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, docboost.NewConfig(), cfg)
	})

	t.Run("reads every section", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
db = "/var/lib/docboost/index.db"

[api]
url = "https://api.cakephp.org/5.x/"
source = "cakephp-api-5.x"
concurrency = 8
rate_limit = 2.5
timeout = "30s"

[connections]
default = "/srv/app/app.db"
reporting = "/srv/app/reporting.db"
`)

		cfg, err := toml.LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "/var/lib/docboost/index.db", cfg.DB)
		assert.Equal(t, docboost.APIConfig{
			URL:         "https://api.cakephp.org/5.x/",
			Source:      "cakephp-api-5.x",
			Concurrency: 8,
			RateLimit:   2.5,
			Timeout:     docboost.Duration(30 * time.Second),
		}, cfg.API)
		assert.Equal(t, map[string]string{
			"default":   "/srv/app/app.db",
			"reporting": "/srv/app/reporting.db",
		}, cfg.Connections)
	})

	t.Run("absent keys keep defaults", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
[api]
url = "https://api.cakephp.org/5.x/"
`)

		cfg, err := toml.LoadConfig(path)
		require.NoError(t, err)

		assert.Empty(t, cfg.DB)
		assert.Equal(t, "https://api.cakephp.org/5.x/", cfg.API.URL)
		assert.Equal(t, docboost.DefaultAPISource, cfg.API.Source)
		assert.Equal(t, docboost.DefaultAPIConcurrency, cfg.API.Concurrency)
		assert.Equal(t, docboost.Duration(docboost.DefaultAPITimeout), cfg.API.Timeout)
		assert.NotNil(t, cfg.Connections)
	})

	t.Run("unknown keys return EINVALID", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
[api]
ulr = "https://api.cakephp.org/5.x/"
`)

		_, err := toml.LoadConfig(path)
		require.Error(t, err)
		assert.Equal(t, docboost.EINVALID, docboost.ErrorCode(err))
	})

	t.Run("malformed TOML returns EINVALID", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "db = \n")

		_, err := toml.LoadConfig(path)
		require.Error(t, err)
		assert.Equal(t, docboost.EINVALID, docboost.ErrorCode(err))
		assert.Contains(t, docboost.ErrorMessage(err), "line 1")
	})

	t.Run("invalid duration returns EINVALID", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
[api]
timeout = "soon"
`)

		_, err := toml.LoadConfig(path)
		require.Error(t, err)
		assert.Equal(t, docboost.EINVALID, docboost.ErrorCode(err))
	})

	t.Run("unreadable path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := toml.LoadConfig(t.TempDir())
		require.Error(t, err)
	})
}
