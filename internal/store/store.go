// Package store implementa el store de estado de inventario: un único
// documento en memoria mutado exclusivamente a través de un conjunto cerrado
// de transiciones nombradas. Cada transición se aplica de forma síncrona bajo
// lock, persiste el estado completo a través del puerto de persistencia y
// notifica a los suscriptores. No hay I/O de red dentro de una transición.
package store

import (
	"sync"

	"github.com/camivargas/cafestock-api/internal/domain/entity"
	"github.com/camivargas/cafestock-api/internal/domain/repository"
	"github.com/camivargas/cafestock-api/pkg/logger"
)

var _ repository.SettingsRepository = (*Store)(nil)

// Snapshot es el documento completo que se serializa tras cada transición:
// todas las entidades más el selector de sede actual.
type Snapshot struct {
	Locations       []*entity.Location   `json:"locations"`
	Categories      []*entity.Category   `json:"categories"`
	Suppliers       []*entity.Supplier   `json:"suppliers"`
	Items           []*entity.Item       `json:"items"`
	Orders          []*entity.Order      `json:"orders"`
	Transfers       []*entity.Transfer   `json:"transfers"`
	TeamMembers     []*entity.TeamMember `json:"users"`
	CurrentLocation string               `json:"currentLocation"`

	// seq ordena los snapshots según la transición que los produjo; no se
	// serializa, solo evita que un guardado viejo pise a uno más nuevo.
	seq uint64
}

// Persistence puerto de persistencia inyectado al store. SaveState se invoca
// tras cada transición (best effort: un fallo se loguea y no revierte la
// transición). LoadState devuelve found=false si no hay snapshot previo o si
// el guardado estaba corrupto y fue descartado. Los flags de onboarding y el
// tema viven bajo claves separadas del blob de estado.
type Persistence interface {
	SaveState(snap *Snapshot) error
	LoadState() (*Snapshot, bool, error)
	ReadFlag(key string) (bool, error)
	WriteFlag(key string, value bool) error
	ReadTheme() (string, error)
	WriteTheme(theme string) error
}

// Event notifica a los suscriptores qué transición acaba de aplicarse.
type Event struct {
	Transition string
}

// Subscriber callback invocado después de cada transición (fuera del lock).
type Subscriber func(Event)

// state documento único de estado. Las entidades solo viven aquí; no hay
// entidad con ciclo de vida propio fuera del store.
type state struct {
	locations       []*entity.Location
	categories      []*entity.Category
	suppliers       []*entity.Supplier
	items           []*entity.Item
	orders          []*entity.Order
	transfers       []*entity.Transfer
	team            []*entity.TeamMember
	accounts        []*entity.Account
	currentLocation string
}

// Store objeto explícito construido una vez al arrancar el proceso, con el
// puerto de persistencia inyectado (test doubles en tests, archivo JSON en
// producción). Un único escritor a la vez: cada transición toma el write lock
// y se aplica a término antes de la siguiente.
type Store struct {
	mu      sync.RWMutex
	st      state
	seq     uint64
	persist Persistence
	log     *logger.Logger

	commitMu     sync.Mutex
	persistedSeq uint64

	subMu sync.RWMutex
	subs  []Subscriber
}

// New construye el store: parte siempre del dataset semilla y, si existe un
// snapshot previo, restaura únicamente el selector de sede actual (el resto
// del snapshot se ignora en la carga).
func New(persist Persistence, log *logger.Logger) *Store {
	s := &Store{
		st:      seedState(),
		persist: persist,
		log:     log,
	}
	if snap, found, err := persist.LoadState(); err != nil {
		log.Warn().Err(err).Msg("store: snapshot previo ilegible, se parte del seed")
	} else if found && snap.CurrentLocation != "" {
		s.st.currentLocation = snap.CurrentLocation
	}
	return s
}

// Subscribe registra un callback que se invoca tras cada transición.
func (s *Store) Subscribe(fn Subscriber) {
	s.subMu.Lock()
	s.subs = append(s.subs, fn)
	s.subMu.Unlock()
}

// snapshotLocked arma el Snapshot con copias de los slices y clones de los
// mapas de stock (el estado interno nunca se expone mutable). Llamar con el
// lock tomado.
func (s *Store) snapshotLocked() *Snapshot {
	s.seq++
	snap := &Snapshot{
		seq:             s.seq,
		Locations:       make([]*entity.Location, len(s.st.locations)),
		Categories:      make([]*entity.Category, len(s.st.categories)),
		Suppliers:       make([]*entity.Supplier, len(s.st.suppliers)),
		Items:           make([]*entity.Item, 0, len(s.st.items)),
		Orders:          make([]*entity.Order, len(s.st.orders)),
		Transfers:       make([]*entity.Transfer, len(s.st.transfers)),
		TeamMembers:     make([]*entity.TeamMember, len(s.st.team)),
		CurrentLocation: s.st.currentLocation,
	}
	for i, l := range s.st.locations {
		cp := *l
		snap.Locations[i] = &cp
	}
	for i, c := range s.st.categories {
		cp := *c
		snap.Categories[i] = &cp
	}
	for i, p := range s.st.suppliers {
		cp := *p
		snap.Suppliers[i] = &cp
	}
	for _, it := range s.st.items {
		cp := *it
		cp.Locations = it.CloneLocations()
		snap.Items = append(snap.Items, &cp)
	}
	for i, o := range s.st.orders {
		cp := *o
		snap.Orders[i] = &cp
	}
	for i, t := range s.st.transfers {
		cp := *t
		snap.Transfers[i] = &cp
	}
	for i, m := range s.st.team {
		cp := *m
		snap.TeamMembers[i] = &cp
	}
	return snap
}

// commit persiste el snapshot y notifica a los suscriptores. Se llama con el
// lock ya liberado para que un suscriptor pueda leer del store sin bloquearse;
// commitMu serializa los guardados y un snapshot ya superado por otro más
// nuevo se descarta, así el archivo nunca retrocede a un estado viejo.
func (s *Store) commit(transition string, snap *Snapshot) {
	s.commitMu.Lock()
	if snap.seq > s.persistedSeq {
		if err := s.persist.SaveState(snap); err != nil {
			s.log.Error().Err(err).Str("transition", transition).Msg("store: persistir snapshot")
		} else {
			s.persistedSeq = snap.seq
		}
	}
	s.commitMu.Unlock()
	s.subMu.RLock()
	subs := make([]Subscriber, len(s.subs))
	copy(subs, s.subs)
	s.subMu.RUnlock()
	for _, fn := range subs {
		fn(Event{Transition: transition})
	}
}

// CurrentLocation devuelve el selector de sede actual.
func (s *Store) CurrentLocation() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.currentLocation, nil
}

// SetCurrentLocation reemplaza el selector. No valida que el id exista: un id
// inválido deja el selector apuntando a nada (responsabilidad del caller).
func (s *Store) SetCurrentLocation(locationID string) error {
	s.mu.Lock()
	s.st.currentLocation = locationID
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.commit("setCurrentLocation", snap)
	return nil
}

// Flag lee un flag booleano (onboarding_complete, setup_complete...).
func (s *Store) Flag(key string) (bool, error) {
	return s.persist.ReadFlag(key)
}

// SetFlag escribe un flag booleano bajo su propia clave.
func (s *Store) SetFlag(key string, value bool) error {
	return s.persist.WriteFlag(key, value)
}

// Theme lee la preferencia de tema.
func (s *Store) Theme() (string, error) {
	return s.persist.ReadTheme()
}

// SetTheme escribe la preferencia de tema bajo su propia clave.
func (s *Store) SetTheme(theme string) error {
	return s.persist.WriteTheme(theme)
}
