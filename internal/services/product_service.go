// internal/services/product_service.go
package services

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"github.com/javajoker/natura-backend/internal/database"
	"github.com/javajoker/natura-backend/internal/models"
)

type ProductService struct {
	store *database.Store
}

type ProductImport struct {
	Codigo string  `json:"codigo" validate:"required,max=64"`
	Nombre string  `json:"nombre" validate:"required,max=255"`
	Precio float64 `json:"precio" validate:"gte=0"`
}

type ImportProductsRequest struct {
	Products []ProductImport `json:"products" validate:"required,dive"`
}

func NewProductService(store *database.Store) *ProductService {
	return &ProductService{store: store}
}

// SearchProducts matches q as a substring of the name or the code, ordered
// by code. Case sensitivity follows the database collation.
func (s *ProductService) SearchProducts(ctx context.Context, q string) ([]models.Product, error) {
	pattern := "%" + q + "%"

	products := make([]models.Product, 0)
	if _, err := s.store.Scan(ctx, &products, `
		SELECT codigo, nombre, precio
		FROM productos
		WHERE nombre LIKE ? OR codigo LIKE ?
		ORDER BY codigo`, pattern, pattern); err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

// FindProductExact returns at most one product whose code equals code.
func (s *ProductService) FindProductExact(ctx context.Context, code string) ([]models.Product, error) {
	products := make([]models.Product, 0, 1)
	if _, err := s.store.Scan(ctx, &products, `
		SELECT codigo, nombre, precio
		FROM productos
		WHERE codigo = ?
		ORDER BY codigo
		LIMIT 1`, code); err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return products, nil
}

// ImportProducts inserts or updates reference products by code in a single
// transaction and returns how many distinct codes were written.
func (s *ProductService) ImportProducts(ctx context.Context, req *ImportProductsRequest) (int, error) {
	if err := validateRequest(req); err != nil {
		return 0, err
	}
	if len(req.Products) == 0 {
		return 0, nil
	}

	// A code listed twice keeps its last entry; one upsert statement may not
	// touch the same row twice.
	position := make(map[string]int, len(req.Products))
	products := make([]models.Product, 0, len(req.Products))
	for _, p := range req.Products {
		product := models.Product{Codigo: p.Codigo, Nombre: p.Nombre, Precio: p.Precio}
		if i, seen := position[p.Codigo]; seen {
			products[i] = product
			continue
		}
		position[p.Codigo] = len(products)
		products = append(products, product)
	}

	err := s.store.Transaction(ctx, func(tx *database.Store) error {
		return tx.DB().WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "codigo"}},
			DoUpdates: clause.AssignmentColumns([]string{"nombre", "precio"}),
		}).CreateInBatches(&products, 100).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to import products: %w", err)
	}
	return len(products), nil
}
