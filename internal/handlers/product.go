// internal/handlers/product.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/natura-backend/internal/services"
	"github.com/javajoker/natura-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// GET /buscar-producto?q=
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	products, err := h.productService.SearchProducts(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, products)
}

// GET /buscarProductoExact?q=
func (h *ProductHandler) FindProductExact(c *gin.Context) {
	products, err := h.productService.FindProductExact(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, products)
}
