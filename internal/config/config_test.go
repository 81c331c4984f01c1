package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("empty path gives defaults", func(t *testing.T) {
		c, err := Load("")
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff(Default(), c))
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeConfig(t, `
savings_rate: 0.05
quote_fetch:
  batch_size: 3
  batch_delay: 1s
quote_cache_ttl: 10m
benchmarks:
  2020:
    start: 3230.78
    now: 6000
`)
		c, err := Load(path)
		require.NoError(t, err)

		require.Equal(
			t,
			"",
			cmp.Diff(&Config{
				SavingsRate: 0.05,
				QuoteFetch: QuoteFetchConfig{
					BatchSize:  3,
					BatchDelay: time.Second,
				},
				QuoteCacheTTL: 10 * time.Minute,
				Benchmarks: map[int]BenchmarkLevel{
					2020: {Start: 3230.78, Now: 6000},
				},
			}, c),
		)
	})

	t.Run("partial file keeps other defaults", func(t *testing.T) {
		c, err := Load(writeConfig(t, "savings_rate: 0.01\n"))
		require.NoError(t, err)
		require.Equal(t, 5, c.QuoteFetch.BatchSize)
		require.Equal(t, 250*time.Millisecond, c.QuoteFetch.BatchDelay)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		for _, body := range []string{
			"savings_rate: -0.1\n",
			"quote_fetch:\n  batch_size: 0\n",
			"benchmarks:\n  2001:\n    start: 0\n    now: 10\n",
		} {
			_, err := Load(writeConfig(t, body))
			require.Error(t, err, body)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}
