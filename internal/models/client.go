// internal/models/client.go
package models

type Client struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Nombre string `json:"nombre" gorm:"size:255;not null"`
}

func (Client) TableName() string {
	return "clientes"
}
