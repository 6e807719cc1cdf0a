package cryptox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadOrGenerateSecret(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pepper")

	first, err := LoadOrGenerateSecret(path, 32)
	require.NoError(t, err)
	require.Len(t, first, 43)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// Second call reads the persisted value instead of generating a new one.
	second, err := LoadOrGenerateSecret(path, 32)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestLoadOrGenerateSecret_TrimsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	require.NoError(t, os.WriteFile(path, []byte("abc123\n"), 0600))

	secret, err := LoadOrGenerateSecret(path, 32)
	require.NoError(t, err)
	require.Equal(t, "abc123", secret)
}

func TestLoadOrGenerateSecret_Errors(t *testing.T) {
	_, err := LoadOrGenerateSecret(filepath.Join(t.TempDir(), "x"), 0)
	require.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(empty, nil, 0600))
	_, err = LoadOrGenerateSecret(empty, 32)
	require.Error(t, err)
}
