package snapshot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camivargas/cafestock-api/internal/infrastructure/snapshot"
	"github.com/camivargas/cafestock-api/internal/store"
	"github.com/camivargas/cafestock-api/pkg/logger"
)

func newFileStore(t *testing.T) (*snapshot.FileStore, string) {
	t.Helper()
	dir := t.TempDir()
	fs, err := snapshot.NewFileStore(dir, logger.NewNop())
	require.NoError(t, err)
	return fs, dir
}

func TestFileStore_GuardaYCargaEstado(t *testing.T) {
	fs, _ := newFileStore(t)

	_, found, err := fs.LoadState()
	require.NoError(t, err)
	assert.False(t, found, "sin archivo previo no hay estado")

	snap := &store.Snapshot{CurrentLocation: "loc-centro"}
	require.NoError(t, fs.SaveState(snap))

	got, found, err := fs.LoadState()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "loc-centro", got.CurrentLocation)
}

// Un snapshot corrupto no interrumpe el arranque: se descarta el archivo y se
// reporta found=false, como si nunca hubiera existido.
func TestFileStore_JSONCorrupto_SeDescarta(t *testing.T) {
	fs, dir := newFileStore(t)

	path := filepath.Join(dir, "cafestock-inventory.json")
	require.NoError(t, os.WriteFile(path, []byte("{esto no es json"), 0o644))

	_, found, err := fs.LoadState()
	require.NoError(t, err)
	assert.False(t, found)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "el archivo dañado se elimina")
}

func TestFileStore_FlagsBajoClavesPropias(t *testing.T) {
	fs, dir := newFileStore(t)

	v, err := fs.ReadFlag("onboarding_complete")
	require.NoError(t, err)
	assert.False(t, v, "flag ausente = false")

	require.NoError(t, fs.WriteFlag("onboarding_complete", true))
	require.NoError(t, fs.WriteFlag("setup_complete", false))

	v, err = fs.ReadFlag("onboarding_complete")
	require.NoError(t, err)
	assert.True(t, v)
	v, err = fs.ReadFlag("setup_complete")
	require.NoError(t, err)
	assert.False(t, v)

	// Cada flag vive en su propio archivo, separado del blob de estado.
	_, err = os.Stat(filepath.Join(dir, "cafestock-onboarding_complete.json"))
	assert.NoError(t, err)
}

func TestFileStore_Tema(t *testing.T) {
	fs, _ := newFileStore(t)

	theme, err := fs.ReadTheme()
	require.NoError(t, err)
	assert.Empty(t, theme, "sin preferencia guardada el tema es vacío")

	require.NoError(t, fs.WriteTheme("dark"))
	theme, err = fs.ReadTheme()
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)
}
