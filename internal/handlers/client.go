// internal/handlers/client.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/natura-backend/internal/i18n"
	"github.com/javajoker/natura-backend/internal/metrics"
	"github.com/javajoker/natura-backend/internal/services"
	"github.com/javajoker/natura-backend/internal/utils"
)

type ClientHandler struct {
	clientService *services.ClientService
}

func NewClientHandler(clientService *services.ClientService) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
	}
}

// GET /clientes
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.clientService.ListClients(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, clients)
}

// POST /crear-cliente
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req services.ClientRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.clientService.CreateClient(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	metrics.RecordClient(metrics.OpCreate)
	utils.MessageResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyClientCreated), gin.H{
		"cliente_id": id,
	})
}

// GET /clientes/:id
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, client)
}

// PUT /clientes/:id
func (h *ClientHandler) EditClient(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.ClientRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.clientService.EditClient(c.Request.Context(), id, &req); err != nil {
		respondError(c, err)
		return
	}

	metrics.RecordClient(metrics.OpUpdate)
	utils.MessageResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyClientUpdated), nil)
}

// DELETE /clientes/:id
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	metrics.RecordClient(metrics.OpDelete)
	utils.MessageResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyClientDeleted), nil)
}
