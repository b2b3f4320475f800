package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("HYDRO_TEST_A=from-file\nHYDRO_TEST_B=from-file\n"), 0o600))

	t.Setenv("ENV_PATH", path)
	t.Setenv("HYDRO_TEST_A", "from-env")
	t.Setenv("HYDRO_TEST_B", "")
	os.Unsetenv("HYDRO_TEST_B")

	require.NoError(t, LoadDotEnv("local", "unused"))
	assert.Equal(t, "from-env", os.Getenv("HYDRO_TEST_A"))
	assert.Equal(t, "from-file", os.Getenv("HYDRO_TEST_B"))
}

func TestLoadDotEnv_Missing(t *testing.T) {
	t.Setenv("ENV_PATH", "")

	assert.Error(t, LoadDotEnv("local", filepath.Join(t.TempDir(), "missing.env")))
	assert.NoError(t, LoadDotEnv("prod", filepath.Join(t.TempDir(), "missing.env")))
}

func TestTypedGetters(t *testing.T) {
	t.Setenv("HYDRO_TEST_INT", "12")
	t.Setenv("HYDRO_TEST_BAD", "twelve")
	t.Setenv("HYDRO_TEST_DUR", "750ms")
	t.Setenv("HYDRO_TEST_BOOL", "true")
	t.Setenv("HYDRO_TEST_EMPTY", "")

	n, err := Int("HYDRO_TEST_INT", 1)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	n, err = Int("HYDRO_TEST_EMPTY", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = Int("HYDRO_TEST_BAD", 1)
	assert.ErrorContains(t, err, "HYDRO_TEST_BAD")

	d, err := Duration("HYDRO_TEST_DUR", time.Second)
	require.NoError(t, err)
	assert.Equal(t, 750*time.Millisecond, d)

	_, err = Duration("HYDRO_TEST_BAD", time.Second)
	assert.Error(t, err)

	assert.True(t, Bool("HYDRO_TEST_BOOL"))
	assert.False(t, Bool("HYDRO_TEST_EMPTY"))
	assert.Equal(t, "fallback", String("HYDRO_TEST_EMPTY", "fallback"))
}
