// internal/models/order.go
package models

import (
	"time"
)

// Order carries no association fields so no foreign keys are migrated:
// clients and products may be deleted while orders still reference them.
type Order struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ClienteID uint      `json:"cliente_id" gorm:"not null;index"`
	Fecha     time.Time `json:"fecha" gorm:"not null"`
}

func (Order) TableName() string {
	return "pedidos"
}

// OrderItem stores the unit price as it was when the order was placed.
type OrderItem struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	PedidoID    uint    `json:"pedido_id" gorm:"not null;index"`
	ProductoCod string  `json:"producto_cod" gorm:"size:64;not null"`
	Cantidad    int     `json:"cantidad" gorm:"not null"`
	Precio      float64 `json:"precio" gorm:"not null"`
	Tipo        string  `json:"tipo" gorm:"size:64;not null"`
}

func (OrderItem) TableName() string {
	return "pedido_items"
}
