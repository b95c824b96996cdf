// internal/models/product.go
package models

// Product is catalog reference data. It is maintained outside the HTTP API
// and looked up by code when orders are displayed.
type Product struct {
	Codigo string  `json:"codigo" gorm:"primaryKey;size:64"`
	Nombre string  `json:"nombre" gorm:"size:255;not null;index"`
	Precio float64 `json:"precio" gorm:"not null;default:0"`
}

func (Product) TableName() string {
	return "productos"
}
