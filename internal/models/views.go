// internal/models/views.go
package models

import (
	"time"
)

// OrderSummary is one row of the order listing.
type OrderSummary struct {
	ID      uint      `json:"id"`
	Cliente *string   `json:"cliente"`
	Fecha   time.Time `json:"fecha"`
}

// OrderTotal is one row of the aggregated order summary.
type OrderTotal struct {
	ID          uint      `json:"id"`
	Fecha       time.Time `json:"fecha"`
	Cliente     *string   `json:"cliente"`
	PrecioTotal float64   `json:"precio_total"`
}

// OrderItemView is an item enriched with the product name. Nombre is nil when
// the product no longer exists.
type OrderItemView struct {
	PedidoID    uint    `json:"-"`
	ProductoCod string  `json:"producto_cod"`
	Nombre      *string `json:"nombre"`
	Cantidad    int     `json:"cantidad"`
	Precio      float64 `json:"precio"`
	Tipo        string  `json:"tipo"`
}

type OrderDetail struct {
	ID        uint            `json:"id"`
	ClienteID uint            `json:"cliente_id"`
	Fecha     time.Time       `json:"fecha"`
	Items     []OrderItemView `json:"items"`
}

// OrderWithItems is the per-order shape of the detailed listings.
type OrderWithItems struct {
	ID         uint            `json:"id"`
	Cliente    *string         `json:"cliente"`
	Fecha      time.Time       `json:"fecha"`
	TotalItems int             `json:"total_items"`
	Items      []OrderItemView `json:"items"`
}

// TotalQuantity sums the item quantities.
func TotalQuantity(items []OrderItemView) int {
	total := 0
	for _, item := range items {
		total += item.Cantidad
	}
	return total
}
