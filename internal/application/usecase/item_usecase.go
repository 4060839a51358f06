package usecase

import (
	"github.com/camivargas/cafestock-api/internal/application/dto"
	"github.com/camivargas/cafestock-api/internal/domain"
	"github.com/camivargas/cafestock-api/internal/domain/entity"
	"github.com/camivargas/cafestock-api/internal/domain/repository"
)

// ItemUseCase casos de uso para items y ajustes de stock.
type ItemUseCase struct {
	items repository.ItemRepository
	stock repository.StockRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(items repository.ItemRepository, stock repository.StockRepository) *ItemUseCase {
	return &ItemUseCase{items: items, stock: stock}
}

// Create crea un item. Las cantidades negativas se rechazan con validación
// (la coerción queda solo para el piso de cero en ajustes, nunca en la
// entrada). El stock inicial se siembra en todas las sedes existentes.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" {
		return nil, domain.Validation("name", "el nombre es obligatorio")
	}
	if in.Unit == "" {
		return nil, domain.Validation("unit", "la unidad es obligatoria")
	}
	if in.MinStock.IsNegative() {
		return nil, domain.Validation("min_stock", "no puede ser negativo")
	}
	if in.MaxStock.IsNegative() {
		return nil, domain.Validation("max_stock", "no puede ser negativo")
	}
	if in.Cost.IsNegative() {
		return nil, domain.Validation("cost", "no puede ser negativo")
	}
	if in.InitialQuantity.IsNegative() {
		return nil, domain.Validation("initial_quantity", "no puede ser negativa")
	}
	item := &entity.Item{
		Name:       in.Name,
		CategoryID: in.CategoryID,
		Unit:       in.Unit,
		MinStock:   in.MinStock,
		MaxStock:   in.MaxStock,
		Cost:       in.Cost,
		SupplierID: in.SupplierID,
		ExpiryDate: in.ExpiryDate,
	}
	if err := uc.items.AddItem(item, in.InitialQuantity); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un item con su stock por sede (nil si no existe).
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.items.GetItem(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// List lista todos los items.
func (uc *ItemUseCase) List() (*dto.ItemListResponse, error) {
	list, err := uc.items.ListItems()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{Items: items}, nil
}

// Update edita el item sin tocar las cantidades por sede.
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.items.GetItem(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.Validation("name", "el nombre no puede quedar vacío")
		}
		item.Name = *in.Name
	}
	if in.CategoryID != nil {
		item.CategoryID = *in.CategoryID
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.MinStock != nil {
		if in.MinStock.IsNegative() {
			return nil, domain.Validation("min_stock", "no puede ser negativo")
		}
		item.MinStock = *in.MinStock
	}
	if in.MaxStock != nil {
		if in.MaxStock.IsNegative() {
			return nil, domain.Validation("max_stock", "no puede ser negativo")
		}
		item.MaxStock = *in.MaxStock
	}
	if in.Cost != nil {
		if in.Cost.IsNegative() {
			return nil, domain.Validation("cost", "no puede ser negativo")
		}
		item.Cost = *in.Cost
	}
	if in.SupplierID != nil {
		item.SupplierID = *in.SupplierID
	}
	if in.ExpiryDate != nil {
		item.ExpiryDate = in.ExpiryDate
	}
	if err := uc.items.UpdateItem(item); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete elimina el item por ID.
func (uc *ItemUseCase) Delete(id string) error {
	return uc.items.DeleteItem(id)
}

// AdjustStock aplica un ajuste (positivo o negativo) al stock del item en
// una sede y devuelve la entrada resultante con su estado rederivado.
func (uc *ItemUseCase) AdjustStock(itemID string, in dto.AdjustStockRequest) (*dto.StockEntryResponse, error) {
	if in.LocationID == "" {
		return nil, domain.Validation("location_id", "la sede es obligatoria")
	}
	entry, err := uc.stock.AdjustStock(itemID, in.LocationID, in.Adjustment)
	if err != nil {
		return nil, err
	}
	return &dto.StockEntryResponse{Quantity: entry.Quantity, Status: entry.Status}, nil
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	locations := make(map[string]dto.StockEntryResponse, len(it.Locations))
	for id, e := range it.Locations {
		locations[id] = dto.StockEntryResponse{Quantity: e.Quantity, Status: e.Status}
	}
	return &dto.ItemResponse{
		ID:         it.ID,
		Name:       it.Name,
		CategoryID: it.CategoryID,
		Unit:       it.Unit,
		MinStock:   it.MinStock,
		MaxStock:   it.MaxStock,
		Cost:       it.Cost,
		SupplierID: it.SupplierID,
		ExpiryDate: it.ExpiryDate,
		Locations:  locations,
		CreatedAt:  it.CreatedAt,
		UpdatedAt:  it.UpdatedAt,
	}
}
