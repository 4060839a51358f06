package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Transfer.
const (
	TransferPending   = "pending"
	TransferInTransit = "in-transit"
	TransferCompleted = "completed"
	TransferCancelled = "cancelled"
)

// Transfer representa un traslado de stock entre dos sedes. Los nombres de
// item y sedes son snapshots desnormalizados al momento de solicitarlo.
// Completar un traslado es la única operación con efecto cruzado sobre el
// stock: debita la sede origen y acredita la destino en una sola transición.
type Transfer struct {
	ID               string
	ItemID           string
	ItemName         string
	FromLocationID   string
	FromLocationName string
	ToLocationID     string
	ToLocationName   string
	Quantity         decimal.Decimal
	Status           string
	RequestDate      time.Time
	ExpectedDate     *time.Time
	Reason           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ValidTransferStatus indica si el estado es uno de los permitidos.
func ValidTransferStatus(s string) bool {
	switch s {
	case TransferPending, TransferInTransit, TransferCompleted, TransferCancelled:
		return true
	}
	return false
}
