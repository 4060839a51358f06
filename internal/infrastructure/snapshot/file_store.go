// Package snapshot implementa el adaptador de persistencia del store: el
// estado completo se serializa como un único documento JSON bajo una clave
// fija después de cada transición, y los flags de onboarding/setup y el tema
// se guardan cada uno bajo su propia clave. Cada clave es un archivo dentro
// del directorio de datos.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/camivargas/cafestock-api/internal/store"
	"github.com/camivargas/cafestock-api/pkg/logger"
)

// Claves fijas de almacenamiento.
const (
	stateKey = "cafestock-inventory.json"
	themeKey = "cafestock-theme.json"
)

var _ store.Persistence = (*FileStore)(nil)

// FileStore adaptador de persistencia sobre el sistema de archivos.
type FileStore struct {
	dir string
	log *logger.Logger
}

// NewFileStore crea el adaptador; asegura que el directorio de datos exista.
func NewFileStore(dir string, log *logger.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("snapshot: crear directorio %s: %w", dir, err)
	}
	return &FileStore{dir: dir, log: log}, nil
}

// SaveState serializa el estado completo bajo la clave fija. Escritura
// atómica (archivo temporal + rename) para no dejar un snapshot a medias.
func (f *FileStore) SaveState(snap *store.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("snapshot: serializar estado: %w", err)
	}
	return f.writeKey(stateKey, data)
}

// LoadState lee el snapshot previo. Un JSON corrupto no interrumpe el
// arranque: se loguea, se elimina la entrada dañada y se devuelve
// found=false (equivale a "sin estado guardado").
func (f *FileStore) LoadState() (*store.Snapshot, bool, error) {
	path := filepath.Join(f.dir, stateKey)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("snapshot: leer estado: %w", err)
	}
	var snap store.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		f.log.Warn().Err(err).Str("key", stateKey).Msg("snapshot corrupto, se descarta")
		_ = os.Remove(path)
		return nil, false, nil
	}
	return &snap, true, nil
}

// ReadFlag lee un flag booleano bajo su propia clave (false si no existe o
// está corrupto).
func (f *FileStore) ReadFlag(key string) (bool, error) {
	data, err := os.ReadFile(filepath.Join(f.dir, flagKey(key)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("snapshot: leer flag %s: %w", key, err)
	}
	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		f.log.Warn().Err(err).Str("key", key).Msg("flag corrupto, se descarta")
		_ = os.Remove(filepath.Join(f.dir, flagKey(key)))
		return false, nil
	}
	return v, nil
}

// WriteFlag escribe un flag booleano bajo su propia clave.
func (f *FileStore) WriteFlag(key string, value bool) error {
	data, _ := json.Marshal(value)
	return f.writeKey(flagKey(key), data)
}

// ReadTheme lee la preferencia de tema ("" si no hay).
func (f *FileStore) ReadTheme() (string, error) {
	data, err := os.ReadFile(filepath.Join(f.dir, themeKey))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("snapshot: leer tema: %w", err)
	}
	var theme string
	if err := json.Unmarshal(data, &theme); err != nil {
		f.log.Warn().Err(err).Msg("tema corrupto, se descarta")
		_ = os.Remove(filepath.Join(f.dir, themeKey))
		return "", nil
	}
	return theme, nil
}

// WriteTheme escribe la preferencia de tema.
func (f *FileStore) WriteTheme(theme string) error {
	data, _ := json.Marshal(theme)
	return f.writeKey(themeKey, data)
}

func flagKey(key string) string {
	return "cafestock-" + key + ".json"
}

func (f *FileStore) writeKey(key string, data []byte) error {
	path := filepath.Join(f.dir, key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("snapshot: escribir %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("snapshot: renombrar %s: %w", key, err)
	}
	return nil
}
