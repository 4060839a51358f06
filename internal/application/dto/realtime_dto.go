package dto

import "encoding/json"

// RealtimeTableResponse filas replicadas de una tabla, tal como llegaron en
// las notificaciones de la base.
type RealtimeTableResponse struct {
	Table string            `json:"table"`
	Count int               `json:"count"`
	Rows  []json.RawMessage `json:"rows"`
}
