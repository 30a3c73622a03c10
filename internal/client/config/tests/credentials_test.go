package tests

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-paygate/internal/client/config"
	serr "github.com/IvanChernomyrdin/go-paygate/internal/shared/errors"
)

// clearEnv снимает переменные окружения пакета, чтобы тесты
// не зависели от окружения машины.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvAccessKey, "")
	t.Setenv(config.EnvSecretKey, "")
	t.Setenv(config.EnvBaseURL, "")
}

func TestDefaultPath(t *testing.T) {
	path, err := config.DefaultPath()
	require.NoError(t, err)

	require.True(t, strings.HasSuffix(path, filepath.Join(".paygate", "credentials.json")),
		"unexpected default path %q", path)
}

func TestLoad_MissingFile_NoError(t *testing.T) {
	clearEnv(t)

	c, err := config.Load(filepath.Join(t.TempDir(), "nope", "credentials.json"))
	require.NoError(t, err)
	require.Empty(t, c.AccessKey)
	require.Empty(t, c.SecretKey)
	require.Empty(t, c.BaseURL)
}

func TestLoad_BrokenJSON_ReturnsError(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".paygate", "credentials.json")

	want := &config.Credentials{
		AccessKey: "ak_live",
		SecretKey: "sk_live",
		BaseURL:   "https://api.example.com",
	}
	require.NoError(t, config.Save(path, want))

	// файл с секретом не должен быть читаемым для группы и остальных
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, config.Save(path, &config.Credentials{
		AccessKey: "ak_file",
		SecretKey: "sk_file",
		BaseURL:   "https://file.example.com",
	}))

	t.Setenv(config.EnvAccessKey, "ak_env")
	t.Setenv(config.EnvSecretKey, "")
	t.Setenv(config.EnvBaseURL, "https://env.example.com")

	got, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "ak_env", got.AccessKey)
	// пустая переменная окружения не затирает значение из файла
	require.Equal(t, "sk_file", got.SecretKey)
	require.Equal(t, "https://env.example.com", got.BaseURL)
}

func TestValidate(t *testing.T) {
	c := &config.Credentials{}
	require.ErrorIs(t, c.Validate(), serr.ErrAccessKeyEmpty)

	c.AccessKey = "ak"
	require.ErrorIs(t, c.Validate(), serr.ErrSecretKeyEmpty)

	c.SecretKey = "sk"
	require.NoError(t, c.Validate())
}
