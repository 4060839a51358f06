package store_test

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/camivargas/cafestock-api/internal/domain/entity"
	"github.com/camivargas/cafestock-api/internal/domain/inventory"
	"github.com/camivargas/cafestock-api/internal/store"
	"github.com/camivargas/cafestock-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Doble de persistencia para tests
// ──────────────────────────────────────────────────────────────────────────────

type fakePersist struct {
	mu     sync.Mutex
	saved  []*store.Snapshot
	loaded *store.Snapshot
	flags  map[string]bool
	theme  string
}

func newFakePersist() *fakePersist {
	return &fakePersist{flags: map[string]bool{}}
}

func (f *fakePersist) SaveState(snap *store.Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, snap)
	return nil
}

func (f *fakePersist) LoadState() (*store.Snapshot, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loaded == nil {
		return nil, false, nil
	}
	return f.loaded, true, nil
}

func (f *fakePersist) ReadFlag(key string) (bool, error)  { return f.flags[key], nil }
func (f *fakePersist) WriteFlag(key string, v bool) error { f.flags[key] = v; return nil }
func (f *fakePersist) ReadTheme() (string, error)         { return f.theme, nil }
func (f *fakePersist) WriteTheme(theme string) error      { f.theme = theme; return nil }

func (f *fakePersist) lastSnapshot() *store.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.saved) == 0 {
		return nil
	}
	return f.saved[len(f.saved)-1]
}

func newTestStore(t *testing.T) (*store.Store, *fakePersist) {
	t.Helper()
	fp := newFakePersist()
	return store.New(fp, logger.NewNop()), fp
}

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// ──────────────────────────────────────────────────────────────────────────────
// Sedes
// ──────────────────────────────────────────────────────────────────────────────

// Agregar una sede rellena una entrada en cero en todos los items: el
// conjunto de claves del mapa de stock siempre es el conjunto de sedes.
func TestAddLocation_RellenaStockEnCeroEnTodosLosItems(t *testing.T) {
	s, _ := newTestStore(t)

	loc := &entity.Location{Name: "Sede Chapinero", Address: "Cll 60 # 9-15"}
	require.NoError(t, s.AddLocation(loc))
	require.NotEmpty(t, loc.ID, "el store debe asignar un id fresco")

	items, err := s.ListItems()
	require.NoError(t, err)
	require.NotEmpty(t, items)
	for _, it := range items {
		entry, ok := it.Locations[loc.ID]
		require.True(t, ok, "item %s debe tener entrada para la sede nueva", it.ID)
		assert.True(t, entry.Quantity.IsZero())
		assert.Equal(t, inventory.StatusOutOfStock, entry.Status)
	}
}

// Eliminar una sede quita su clave de todos los items pero no borra items.
func TestDeleteLocation_QuitaClaveDeTodosLosItems(t *testing.T) {
	s, _ := newTestStore(t)

	itemsBefore, err := s.ListItems()
	require.NoError(t, err)

	require.NoError(t, s.DeleteLocation(store.SeedLocationNorte))

	locs, err := s.ListLocations()
	require.NoError(t, err)
	for _, l := range locs {
		assert.NotEqual(t, store.SeedLocationNorte, l.ID)
	}

	itemsAfter, err := s.ListItems()
	require.NoError(t, err)
	assert.Len(t, itemsAfter, len(itemsBefore), "los items no se eliminan con la sede")
	for _, it := range itemsAfter {
		_, ok := it.Locations[store.SeedLocationNorte]
		assert.False(t, ok, "item %s no debe conservar la clave de la sede eliminada", it.ID)
	}
}

// El selector de sede actual acepta cualquier id sin validar existencia.
func TestSetCurrentLocation_NoValidaExistencia(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.SetCurrentLocation("sede-fantasma"))
	cur, err := s.CurrentLocation()
	require.NoError(t, err)
	assert.Equal(t, "sede-fantasma", cur)
}

// ──────────────────────────────────────────────────────────────────────────────
// Items y stock
// ──────────────────────────────────────────────────────────────────────────────

// addItem siembra exactamente una entrada por sede existente al crearlo.
func TestAddItem_SiembraStockPorSedeExistente(t *testing.T) {
	s, _ := newTestStore(t)

	it := &entity.Item{
		Name:       "Sirope de vainilla",
		CategoryID: store.SeedCategoryCafe,
		Unit:       "botella",
		MinStock:   dec(4),
		MaxStock:   dec(24),
		Cost:       decimal.RequireFromString("18500"),
		SupplierID: store.SeedSupplierTostadora,
	}
	require.NoError(t, s.AddItem(it, dec(10)))

	locs, err := s.ListLocations()
	require.NoError(t, err)

	got, err := s.GetItem(it.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Locations, len(locs))
	for _, l := range locs {
		entry, ok := got.Locations[l.ID]
		require.True(t, ok, "debe existir entrada para la sede %s", l.ID)
		assert.Equal(t, "10", entry.Quantity.String())
		assert.Equal(t, inventory.StatusInStock, entry.Status)
	}
}

// updateItem nunca toca el mapa de stock.
func TestUpdateItem_PreservaMapaDeStock(t *testing.T) {
	s, _ := newTestStore(t)

	before, err := s.GetItem("item-grano-espresso")
	require.NoError(t, err)
	require.NotNil(t, before)

	edit := *before
	edit.Name = "Café en grano espresso premium"
	edit.Cost = decimal.RequireFromString("41000")
	edit.Locations = nil // una edición genérica no trae stock
	require.NoError(t, s.UpdateItem(&edit))

	after, err := s.GetItem("item-grano-espresso")
	require.NoError(t, err)
	assert.Equal(t, "Café en grano espresso premium", after.Name)
	assert.Equal(t, before.Locations, after.Locations, "las cantidades por sede no cambian en una edición genérica")
}

// Propiedad central: AdjustStock nunca deja cantidad negativa; el resultado
// es exactamente max(0, q0 + delta) y el estado se rederiva.
func TestAdjustStock_NuncaNegativo(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		fp := newFakePersist()
		s := store.New(fp, logger.NewNop())

		q0 := rapid.Int64Range(0, 500).Draw(rt, "q0")
		delta := rapid.Int64Range(-1000, 1000).Draw(rt, "delta")

		// Lleva el item semilla (18 en Centro) a q0 y luego aplica delta.
		_, err := s.AdjustStock("item-grano-espresso", store.SeedLocationCentro, dec(q0-18))
		if err != nil {
			rt.Fatalf("ajuste inicial: %v", err)
		}
		entry, err := s.AdjustStock("item-grano-espresso", store.SeedLocationCentro, dec(delta))
		if err != nil {
			rt.Fatalf("ajuste: %v", err)
		}

		want := q0 + delta
		if want < 0 {
			want = 0
		}
		if entry.Quantity.Cmp(dec(want)) != 0 {
			rt.Fatalf("cantidad = %s, esperaba %d", entry.Quantity, want)
		}
		it, _ := s.GetItem("item-grano-espresso")
		wantStatus := inventory.Classify(dec(want), it.MinStock)
		if entry.Status != wantStatus {
			rt.Fatalf("estado = %s, esperaba %s", entry.Status, wantStatus)
		}
	})
}

func TestAdjustStock_ItemOSedeInexistente(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.AdjustStock("item-fantasma", store.SeedLocationCentro, dec(1))
	assert.Error(t, err)

	_, err = s.AdjustStock("item-grano-espresso", "sede-fantasma", dec(1))
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

// Renombrar una categoría no necesita cascada: los items referencian el id
// surrogate y el nombre viejo desaparece del listado.
func TestUpdateCategory_RenombraSinCascada(t *testing.T) {
	s, _ := newTestStore(t)

	cat, err := s.GetCategory(store.SeedCategoryLacteos)
	require.NoError(t, err)
	require.Equal(t, "Lácteos", cat.Name)

	cat.Name = "Lácteos y bebidas vegetales"
	require.NoError(t, s.UpdateCategory(cat))

	byOld, err := s.GetCategoryByName("Lácteos")
	require.NoError(t, err)
	assert.Nil(t, byOld, "el nombre viejo ya no existe")

	// Los items siguen apuntando al mismo id y reportan el nombre nuevo.
	it, err := s.GetItem("item-leche-entera")
	require.NoError(t, err)
	assert.Equal(t, store.SeedCategoryLacteos, it.CategoryID)
	renamed, err := s.GetCategory(it.CategoryID)
	require.NoError(t, err)
	assert.Equal(t, "Lácteos y bebidas vegetales", renamed.Name)
}

// Eliminar una categoría nunca borra items: los reasigna a "Sin categoría".
func TestDeleteCategory_ReasignaASinCategoria(t *testing.T) {
	s, _ := newTestStore(t)

	itemsBefore, err := s.ListItems()
	require.NoError(t, err)

	require.NoError(t, s.DeleteCategory(store.SeedCategoryCafe))

	itemsAfter, err := s.ListItems()
	require.NoError(t, err)
	require.Len(t, itemsAfter, len(itemsBefore))

	uncat, err := s.GetCategoryByName(entity.UncategorizedName)
	require.NoError(t, err)
	require.NotNil(t, uncat)

	for _, it := range itemsAfter {
		assert.NotEqual(t, store.SeedCategoryCafe, it.CategoryID)
	}
	reassigned, err := s.GetItem("item-grano-espresso")
	require.NoError(t, err)
	assert.Equal(t, uncat.ID, reassigned.CategoryID)
}

func TestDeleteCategory_ReservadaNoSePuedeBorrar(t *testing.T) {
	s, _ := newTestStore(t)

	uncat, err := s.GetCategoryByName(entity.UncategorizedName)
	require.NoError(t, err)
	require.NotNil(t, uncat)

	assert.Error(t, s.DeleteCategory(uncat.ID))
}

// ──────────────────────────────────────────────────────────────────────────────
// Órdenes
// ──────────────────────────────────────────────────────────────────────────────

// El costo de la orden es un snapshot: item.Cost × cantidad al crearla, y no
// se recalcula si el costo del item cambia después. Crearla no toca stock.
func TestAddOrder_CostoYNombreSonSnapshot(t *testing.T) {
	s, _ := newTestStore(t)

	stockBefore, err := s.GetItem("item-grano-filtrado")
	require.NoError(t, err)

	o := &entity.Order{ItemID: "item-grano-filtrado", Quantity: dec(10), SupplierID: store.SeedSupplierTostadora}
	require.NoError(t, s.AddOrder(o))
	assert.Equal(t, entity.OrderPending, o.Status)
	assert.Equal(t, "Café en grano filtrado", o.ItemName)
	assert.Equal(t, "340000", o.Cost.String(), "cost = 34000 × 10")

	// Subir el costo del item no recalcula la orden.
	it, _ := s.GetItem("item-grano-filtrado")
	it.Cost = decimal.RequireFromString("99000")
	require.NoError(t, s.UpdateItem(it))
	got, err := s.GetOrder(o.ID)
	require.NoError(t, err)
	assert.Equal(t, "340000", got.Cost.String())

	// Sin efecto sobre el stock.
	stockAfter, err := s.GetItem("item-grano-filtrado")
	require.NoError(t, err)
	assert.Equal(t, stockBefore.Locations, stockAfter.Locations)
}

// ──────────────────────────────────────────────────────────────────────────────
// Traslados
// ──────────────────────────────────────────────────────────────────────────────

func totalQuantity(t *testing.T, s *store.Store, itemID string) decimal.Decimal {
	t.Helper()
	it, err := s.GetItem(itemID)
	require.NoError(t, err)
	require.NotNil(t, it)
	total := decimal.Zero
	for _, e := range it.Locations {
		total = total.Add(e.Quantity)
	}
	return total
}

// Propiedad: completar un traslado conserva la cantidad total del item entre
// las dos sedes (el origen pierde exactamente lo que gana el destino).
func TestCompleteTransfer_ConservaCantidadTotal(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		fp := newFakePersist()
		s := store.New(fp, logger.NewNop())

		qty := rapid.Int64Range(1, 15).Draw(rt, "qty")

		before := totalQuantity(t, s, "item-grano-espresso")

		tr := &entity.Transfer{
			ItemID:         "item-grano-espresso",
			FromLocationID: store.SeedLocationCentro,
			ToLocationID:   store.SeedLocationNorte,
			Quantity:       dec(qty),
			Reason:         "reposición sede norte",
		}
		if err := s.AddTransfer(tr); err != nil {
			rt.Fatalf("crear traslado: %v", err)
		}
		if err := s.CompleteTransfer(tr.ID); err != nil {
			rt.Fatalf("completar traslado: %v", err)
		}

		after := totalQuantity(t, s, "item-grano-espresso")
		if before.Cmp(after) != 0 {
			rt.Fatalf("total antes %s != total después %s", before, after)
		}
	})
}

// Id inexistente: no-op silencioso, el estado no cambia.
func TestCompleteTransfer_IdInexistente_NoOp(t *testing.T) {
	s, fp := newTestStore(t)

	before := totalQuantity(t, s, "item-grano-espresso")
	savedBefore := len(fpSaved(fp))

	require.NoError(t, s.CompleteTransfer("tr-fantasma"))

	after := totalQuantity(t, s, "item-grano-espresso")
	assert.True(t, before.Equal(after))
	// El no-op no persiste ningún snapshot nuevo.
	assert.Len(t, fpSaved(fp), savedBefore)
}

func fpSaved(fp *fakePersist) []*store.Snapshot {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	return append([]*store.Snapshot(nil), fp.saved...)
}

// Completar dos veces no duplica el movimiento de stock.
func TestCompleteTransfer_Idempotente(t *testing.T) {
	s, _ := newTestStore(t)

	tr := &entity.Transfer{
		ItemID:         "item-leche-entera",
		FromLocationID: store.SeedLocationCentro,
		ToLocationID:   store.SeedLocationNorte,
		Quantity:       dec(10),
	}
	require.NoError(t, s.AddTransfer(tr))
	require.NoError(t, s.CompleteTransfer(tr.ID))

	it, _ := s.GetItem("item-leche-entera")
	firstFrom := it.Locations[store.SeedLocationCentro].Quantity

	require.NoError(t, s.CompleteTransfer(tr.ID))
	it, _ = s.GetItem("item-leche-entera")
	assert.True(t, firstFrom.Equal(it.Locations[store.SeedLocationCentro].Quantity),
		"un traslado completado no se vuelve a aplicar")
}

// Escenario del diseño: item con {A:10, B:0}, min 5. Ajuste -8 en A → 2
// (low-stock). Traslado de 2 de A a B → A 0 (out-of-stock), B 2 (low-stock).
func TestEscenario_AjusteYTraslado(t *testing.T) {
	s, _ := newTestStore(t)

	it := &entity.Item{
		Name:     "Té chai",
		Unit:     "caja",
		MinStock: dec(5),
		MaxStock: dec(50),
		Cost:     decimal.RequireFromString("12000"),
	}
	require.NoError(t, s.AddItem(it, dec(0)))
	// Deja A=10, B=0.
	_, err := s.AdjustStock(it.ID, store.SeedLocationCentro, dec(10))
	require.NoError(t, err)

	entry, err := s.AdjustStock(it.ID, store.SeedLocationCentro, dec(-8))
	require.NoError(t, err)
	assert.Equal(t, "2", entry.Quantity.String())
	assert.Equal(t, inventory.StatusLowStock, entry.Status)

	tr := &entity.Transfer{
		ItemID:         it.ID,
		FromLocationID: store.SeedLocationCentro,
		ToLocationID:   store.SeedLocationNorte,
		Quantity:       dec(2),
	}
	require.NoError(t, s.AddTransfer(tr))
	require.NoError(t, s.CompleteTransfer(tr.ID))

	got, err := s.GetItem(it.ID)
	require.NoError(t, err)
	from := got.Locations[store.SeedLocationCentro]
	to := got.Locations[store.SeedLocationNorte]
	assert.Equal(t, "0", from.Quantity.String())
	assert.Equal(t, inventory.StatusOutOfStock, from.Status)
	assert.Equal(t, "2", to.Quantity.String())
	assert.Equal(t, inventory.StatusLowStock, to.Status)

	tx, err := s.GetTransfer(tr.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransferCompleted, tx.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Persistencia y suscriptores
// ──────────────────────────────────────────────────────────────────────────────

// Cada transición persiste el snapshot completo y notifica a los
// suscriptores con el nombre de la transición.
func TestTransiciones_PersistenYNotifican(t *testing.T) {
	s, fp := newTestStore(t)

	var events []store.Event
	s.Subscribe(func(e store.Event) { events = append(events, e) })

	require.NoError(t, s.SetCurrentLocation(store.SeedLocationNorte))
	require.NoError(t, s.AddSupplier(&entity.Supplier{Name: "Cafetal del Huila"}))

	require.Len(t, events, 2)
	assert.Equal(t, "setCurrentLocation", events[0].Transition)
	assert.Equal(t, "addSupplier", events[1].Transition)

	last := fp.lastSnapshot()
	require.NotNil(t, last)
	assert.Equal(t, store.SeedLocationNorte, last.CurrentLocation)
	found := false
	for _, p := range last.Suppliers {
		if p.Name == "Cafetal del Huila" {
			found = true
		}
	}
	assert.True(t, found, "el snapshot incluye el proveedor recién creado")
}

// Round-trip: al reconstruir el store con un snapshot previo solo se
// restaura el selector de sede actual; las entidades parten del seed.
func TestNew_RestauraSoloSedeActual(t *testing.T) {
	fp := newFakePersist()
	s1 := store.New(fp, logger.NewNop())
	require.NoError(t, s1.SetCurrentLocation(store.SeedLocationNorte))
	require.NoError(t, s1.AddSupplier(&entity.Supplier{Name: "Proveedor Efímero"}))

	fp.mu.Lock()
	fp.loaded = fp.saved[len(fp.saved)-1]
	fp.mu.Unlock()

	s2 := store.New(fp, logger.NewNop())
	cur, err := s2.CurrentLocation()
	require.NoError(t, err)
	assert.Equal(t, store.SeedLocationNorte, cur)

	sups, err := s2.ListSuppliers()
	require.NoError(t, err)
	for _, p := range sups {
		assert.NotEqual(t, "Proveedor Efímero", p.Name,
			"las entidades del snapshot se ignoran en la carga: se parte del seed")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Cuentas
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateAccount_EmailDuplicado(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.CreateAccount(&entity.Account{Email: "admin@cafestock.local", PasswordHash: "x", Role: entity.RoleAdmin}))
	err := s.CreateAccount(&entity.Account{Email: "ADMIN@cafestock.local", PasswordHash: "y", Role: entity.RoleAdmin})
	assert.Error(t, err, "el email no distingue mayúsculas")
}
