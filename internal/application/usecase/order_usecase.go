package usecase

import (
	"github.com/camivargas/cafestock-api/internal/application/dto"
	"github.com/camivargas/cafestock-api/internal/domain"
	"github.com/camivargas/cafestock-api/internal/domain/entity"
	"github.com/camivargas/cafestock-api/internal/domain/repository"
)

// OrderUseCase casos de uso para órdenes de compra.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// Create crea la orden con nombre de item y costo congelados al momento de
// creación. No tiene efecto sobre el stock.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.ItemID == "" {
		return nil, domain.Validation("item_id", "el item es obligatorio")
	}
	if !in.Quantity.IsPositive() {
		return nil, domain.Validation("quantity", "debe ser mayor que cero")
	}
	order := &entity.Order{
		ItemID:           in.ItemID,
		Quantity:         in.Quantity,
		SupplierID:       in.SupplierID,
		ExpectedDelivery: in.ExpectedDelivery,
	}
	if err := uc.repo.AddOrder(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene una orden por ID (nil si no existe).
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetOrder(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// List lista todas las órdenes.
func (uc *OrderUseCase) List() (*dto.OrderListResponse, error) {
	list, err := uc.repo.ListOrders()
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{Items: items}, nil
}

// Update actualiza cantidad, estado o fecha esperada. El costo congelado no
// se recalcula aunque cambie la cantidad.
func (uc *OrderUseCase) Update(id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetOrder(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if in.Quantity != nil {
		if !in.Quantity.IsPositive() {
			return nil, domain.Validation("quantity", "debe ser mayor que cero")
		}
		order.Quantity = *in.Quantity
	}
	if in.Status != nil {
		if !entity.ValidOrderStatus(*in.Status) {
			return nil, domain.Validation("status", "estado de orden desconocido")
		}
		order.Status = *in.Status
	}
	if in.ExpectedDelivery != nil {
		order.ExpectedDelivery = in.ExpectedDelivery
	}
	if err := uc.repo.UpdateOrder(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Delete elimina la orden por ID.
func (uc *OrderUseCase) Delete(id string) error {
	return uc.repo.DeleteOrder(id)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:               o.ID,
		ItemID:           o.ItemID,
		ItemName:         o.ItemName,
		Quantity:         o.Quantity,
		Status:           o.Status,
		OrderDate:        o.OrderDate,
		ExpectedDelivery: o.ExpectedDelivery,
		SupplierID:       o.SupplierID,
		Cost:             o.Cost,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}
