// internal/services/client_service.go
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/natura-backend/internal/database"
	"github.com/javajoker/natura-backend/internal/models"
)

type ClientService struct {
	store *database.Store
}

type ClientRequest struct {
	Nombre string `json:"nombre" validate:"required,max=255"`
}

func NewClientService(store *database.Store) *ClientService {
	return &ClientService{store: store}
}

func (s *ClientService) CreateClient(ctx context.Context, req *ClientRequest) (uint, error) {
	req.Nombre = strings.TrimSpace(req.Nombre)
	if err := validateRequest(req); err != nil {
		return 0, err
	}

	client := &models.Client{Nombre: req.Nombre}
	if err := s.store.Insert(ctx, client); err != nil {
		return 0, fmt.Errorf("failed to create client: %w", err)
	}

	logrus.WithField("cliente_id", client.ID).Info("Client created")
	return client.ID, nil
}

// ListClients returns all clients in storage order.
func (s *ClientService) ListClients(ctx context.Context) ([]models.Client, error) {
	clients := make([]models.Client, 0)
	if _, err := s.store.Scan(ctx, &clients, "SELECT id, nombre FROM clientes"); err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (s *ClientService) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	n, err := s.store.Scan(ctx, &client, "SELECT id, nombre FROM clientes WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	if n == 0 {
		return nil, ErrClientNotFound
	}
	return &client, nil
}

func (s *ClientService) EditClient(ctx context.Context, id uint, req *ClientRequest) error {
	req.Nombre = strings.TrimSpace(req.Nombre)
	if err := validateRequest(req); err != nil {
		return err
	}

	affected, err := s.store.Write(ctx, "UPDATE clientes SET nombre = ? WHERE id = ?", req.Nombre, id)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	if affected == 0 {
		return ErrClientNotFound
	}
	return nil
}

// DeleteClient hard-deletes the client. Orders that reference it are kept.
func (s *ClientService) DeleteClient(ctx context.Context, id uint) error {
	affected, err := s.store.Write(ctx, "DELETE FROM clientes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if affected == 0 {
		return ErrClientNotFound
	}

	logrus.WithField("cliente_id", id).Info("Client deleted")
	return nil
}
