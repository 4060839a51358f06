package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camivargas/cafestock-api/pkg/logger"
)

type recordingPersist struct {
	mu    sync.Mutex
	saved []*Snapshot
}

func (r *recordingPersist) SaveState(snap *Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, snap)
	return nil
}

func (r *recordingPersist) LoadState() (*Snapshot, bool, error) { return nil, false, nil }
func (r *recordingPersist) ReadFlag(string) (bool, error)       { return false, nil }
func (r *recordingPersist) WriteFlag(string, bool) error        { return nil }
func (r *recordingPersist) ReadTheme() (string, error)          { return "", nil }
func (r *recordingPersist) WriteTheme(string) error             { return nil }

func (r *recordingPersist) snapshots() []*Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Snapshot, len(r.saved))
	copy(out, r.saved)
	return out
}

// Dos transiciones pueden llegar a commit en orden invertido (el lock de
// estado ya se soltó); el snapshot viejo debe descartarse para que el archivo
// nunca retroceda.
func TestCommit_SnapshotSuperadoNoSePersiste(t *testing.T) {
	rec := &recordingPersist{}
	s := &Store{persist: rec, log: logger.NewNop()}

	newer := &Snapshot{seq: 2, CurrentLocation: "loc-nueva"}
	older := &Snapshot{seq: 1, CurrentLocation: "loc-vieja"}

	s.commit("setCurrentLocation", newer)
	s.commit("setCurrentLocation", older)

	saved := rec.snapshots()
	require.Len(t, saved, 1, "el snapshot superado no debe llegar a disco")
	assert.Equal(t, "loc-nueva", saved[0].CurrentLocation)
}

// Bajo transiciones concurrentes los guardados deben quedar en orden de
// transición: cada snapshot persistido es estrictamente más nuevo que el
// anterior y el último coincide con el estado final.
func TestCommit_ConcurrenciaNoDejaUnSnapshotViejoDeUltimo(t *testing.T) {
	rec := &recordingPersist{}
	s := New(rec, logger.NewNop())

	const n = 32
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, s.SetCurrentLocation(fmt.Sprintf("loc-%02d", i)))
		}(i)
	}
	wg.Wait()

	saved := rec.snapshots()
	require.NotEmpty(t, saved)
	for i := 1; i < len(saved); i++ {
		assert.Greater(t, saved[i].seq, saved[i-1].seq, "los guardados no pueden retroceder")
	}

	current, err := s.CurrentLocation()
	require.NoError(t, err)
	assert.Equal(t, current, saved[len(saved)-1].CurrentLocation,
		"el último snapshot persistido debe reflejar el estado final")
}
