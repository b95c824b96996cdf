// internal/handlers/order.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/natura-backend/internal/i18n"
	"github.com/javajoker/natura-backend/internal/metrics"
	"github.com/javajoker/natura-backend/internal/services"
	"github.com/javajoker/natura-backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// POST /crear-pedido
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req services.OrderRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.orderService.CreateOrder(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	metrics.RecordOrder(metrics.OpCreate)
	utils.MessageResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyOrderCreated), gin.H{
		"pedido_id": id,
	})
}

// GET /pedidos
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, orders)
}

// GET /pedidos/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, order)
}

// GET /pedidos/cliente/:clienteId
func (h *OrderHandler) ListOrdersByClient(c *gin.Context) {
	clientID, ok := utils.ParseIDParam(c, "clienteId")
	if !ok {
		return
	}

	orders, err := h.orderService.ListOrdersByClient(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, orders)
}

// GET /pedidos/detalle
func (h *OrderHandler) ListOrdersDetailed(c *gin.Context) {
	orders, err := h.orderService.ListOrdersDetailed(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, orders)
}

// GET /pedidos/resumen
func (h *OrderHandler) SummarizeOrders(c *gin.Context) {
	totals, err := h.orderService.SummarizeOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, totals)
}

// DELETE /pedidos/:id
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	metrics.RecordOrder(metrics.OpDelete)
	utils.MessageResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyOrderDeleted), nil)
}

// PUT /pedidos/:id
func (h *OrderHandler) EditOrder(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.OrderRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.orderService.EditOrder(c.Request.Context(), id, &req); err != nil {
		respondError(c, err)
		return
	}

	metrics.RecordOrder(metrics.OpUpdate)
	utils.MessageResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyOrderUpdated), nil)
}

// GET /debug/items
func (h *OrderHandler) ListItems(c *gin.Context) {
	rows, err := h.orderService.ListItems(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, rows)
}
