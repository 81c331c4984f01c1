package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadSecretsFile(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "secrets.json")
		err := os.WriteFile(path, []byte(`{
			"gpt": "key",
			"jwt": "shh",
			"alpaca": {"apiKey": "a", "apiSecret": "b", "endpoint": "https://data.alpaca.markets"},
			"db": {"host": "localhost", "port": "5432", "user": "postgres", "password": "pw", "database": "sim"}
		}`), 0o600)
		require.NoError(t, err)

		secrets, err := LoadSecretsFile(path)
		require.NoError(t, err)
		require.Equal(t, "key", secrets.ChatGPTApiKey)
		require.True(t, secrets.Alpaca.Enabled())
		require.True(t, secrets.Db.Enabled())
		require.Equal(
			t,
			"host=localhost port=5432 user=postgres password=pw dbname=sim sslmode=disable",
			secrets.Db.ToConnectionStr(),
		)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSecretsFile(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
	})

	t.Run("env selects the file", func(t *testing.T) {
		t.Setenv("ALPHA_ENV", "dev")
		require.Equal(t, "secrets-dev.json", SecretsPath())
		t.Setenv("ALPHA_ENV", "test")
		require.Equal(t, "secrets-test.json", SecretsPath())
	})
}
