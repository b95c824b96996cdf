// internal/services/order_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/natura-backend/internal/database"
	"github.com/javajoker/natura-backend/internal/models"
)

type OrderService struct {
	store *database.Store
	now   func() time.Time
}

// OrderItemRequest accepts the product code as "codigo" or "producto_cod".
type OrderItemRequest struct {
	Codigo      string   `json:"codigo" validate:"required_without=ProductoCod,max=64"`
	ProductoCod string   `json:"producto_cod" validate:"required_without=Codigo,max=64"`
	Cantidad    *int     `json:"cantidad" validate:"required,min=1"`
	Precio      *float64 `json:"precio" validate:"required,gte=0"`
	Tipo        string   `json:"tipo" validate:"required,max=64"`
}

func (r OrderItemRequest) Code() string {
	if r.Codigo != "" {
		return r.Codigo
	}
	return r.ProductoCod
}

// OrderRequest is the payload of both order creation and order edit.
type OrderRequest struct {
	ClienteID *uint              `json:"cliente_id" validate:"required,min=1"`
	Items     []OrderItemRequest `json:"items" validate:"required,dive"`
}

// Item filters select order ids inside the database so the number of bound
// parameters stays constant however many orders match.
const (
	itemViewQuery = `
	SELECT
		pi.pedido_id,
		pi.producto_cod,
		pr.nombre,
		pi.cantidad,
		pi.precio,
		pi.tipo
	FROM pedido_items pi
	LEFT JOIN productos pr ON pr.codigo = pi.producto_cod
	WHERE %s
	ORDER BY pi.pedido_id, pi.id`

	itemsOfOrder  = "pi.pedido_id = ?"
	itemsOfClient = "pi.pedido_id IN (SELECT id FROM pedidos WHERE cliente_id = ?)"
	itemsOfAll    = "pi.pedido_id IN (SELECT id FROM pedidos)"
)

func NewOrderService(store *database.Store) *OrderService {
	return &OrderService{
		store: store,
		now:   time.Now,
	}
}

// CreateOrder inserts the order and its items in one transaction and returns
// the new order id. Client and product references are not checked.
func (s *OrderService) CreateOrder(ctx context.Context, req *OrderRequest) (uint, error) {
	if err := validateRequest(req); err != nil {
		return 0, err
	}

	order := &models.Order{
		ClienteID: *req.ClienteID,
		Fecha:     s.now(),
	}

	err := s.store.Transaction(ctx, func(tx *database.Store) error {
		if err := tx.Insert(ctx, order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		return insertItems(ctx, tx, order.ID, req.Items)
	})
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"pedido_id":  order.ID,
		"cliente_id": order.ClienteID,
		"items":      len(req.Items),
	}).Info("Order created")

	return order.ID, nil
}

// ListOrders returns every order, newest first, with the client name or nil
// when the client no longer exists.
func (s *OrderService) ListOrders(ctx context.Context) ([]models.OrderSummary, error) {
	orders := make([]models.OrderSummary, 0)
	if _, err := s.store.Scan(ctx, &orders, `
		SELECT pe.id, pe.fecha, c.nombre AS cliente
		FROM pedidos pe
		LEFT JOIN clientes c ON c.id = pe.cliente_id
		ORDER BY pe.id DESC`); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// GetOrder returns one order with its items. Items whose product was deleted
// are kept with a nil product name.
func (s *OrderService) GetOrder(ctx context.Context, id uint) (*models.OrderDetail, error) {
	var order models.Order
	n, err := s.store.Scan(ctx, &order, "SELECT id, cliente_id, fecha FROM pedidos WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if n == 0 {
		return nil, ErrOrderNotFound
	}

	items, err := s.itemsByOrder(ctx, itemsOfOrder, order.ID)
	if err != nil {
		return nil, err
	}

	return &models.OrderDetail{
		ID:        order.ID,
		ClienteID: order.ClienteID,
		Fecha:     order.Fecha,
		Items:     itemsOrEmpty(items[order.ID]),
	}, nil
}

// ListOrdersByClient returns the client's orders with their items, newest
// first. An unknown client is ErrClientNotFound; a known client without
// orders yields an empty list.
func (s *OrderService) ListOrdersByClient(ctx context.Context, clientID uint) ([]models.OrderWithItems, error) {
	_, exists, err := s.store.ReadOne(ctx, "SELECT id FROM clientes WHERE id = ?", clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	if !exists {
		return nil, ErrClientNotFound
	}

	orders := make([]models.OrderSummary, 0)
	if _, err := s.store.Scan(ctx, &orders, `
		SELECT pe.id, pe.fecha, c.nombre AS cliente
		FROM pedidos pe
		JOIN clientes c ON c.id = pe.cliente_id
		WHERE pe.cliente_id = ?
		ORDER BY pe.id DESC`, clientID); err != nil {
		return nil, fmt.Errorf("failed to list client orders: %w", err)
	}

	return s.withItems(ctx, orders, itemsOfClient, clientID)
}

// ListOrdersDetailed returns every order with its items, newest first.
func (s *OrderService) ListOrdersDetailed(ctx context.Context) ([]models.OrderWithItems, error) {
	orders, err := s.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, orders, itemsOfAll)
}

// SummarizeOrders returns one row per order with the total price computed by
// the database; orders without items total 0.
func (s *OrderService) SummarizeOrders(ctx context.Context) ([]models.OrderTotal, error) {
	totals := make([]models.OrderTotal, 0)
	if _, err := s.store.Scan(ctx, &totals, `
		SELECT
			pe.id,
			pe.fecha,
			c.nombre AS cliente,
			COALESCE(SUM(pi.cantidad * pi.precio), 0) AS precio_total
		FROM pedidos pe
		LEFT JOIN clientes c ON c.id = pe.cliente_id
		LEFT JOIN pedido_items pi ON pi.pedido_id = pe.id
		GROUP BY pe.id, pe.fecha, c.nombre
		ORDER BY pe.id DESC`); err != nil {
		return nil, fmt.Errorf("failed to summarize orders: %w", err)
	}
	return totals, nil
}

// DeleteOrder removes the order's items and then the order.
func (s *OrderService) DeleteOrder(ctx context.Context, id uint) error {
	err := s.store.Transaction(ctx, func(tx *database.Store) error {
		if err := orderExists(ctx, tx, id); err != nil {
			return err
		}
		if _, err := tx.Write(ctx, "DELETE FROM pedido_items WHERE pedido_id = ?", id); err != nil {
			return fmt.Errorf("failed to delete order items: %w", err)
		}
		if _, err := tx.Write(ctx, "DELETE FROM pedidos WHERE id = ?", id); err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithField("pedido_id", id).Info("Order deleted")
	return nil
}

// EditOrder replaces the client reference and the whole item set.
func (s *OrderService) EditOrder(ctx context.Context, id uint, req *OrderRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}

	err := s.store.Transaction(ctx, func(tx *database.Store) error {
		if err := orderExists(ctx, tx, id); err != nil {
			return err
		}
		if _, err := tx.Write(ctx, "UPDATE pedidos SET cliente_id = ? WHERE id = ?", *req.ClienteID, id); err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}
		if _, err := tx.Write(ctx, "DELETE FROM pedido_items WHERE pedido_id = ?", id); err != nil {
			return fmt.Errorf("failed to delete order items: %w", err)
		}
		return insertItems(ctx, tx, id, req.Items)
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"pedido_id":  id,
		"cliente_id": *req.ClienteID,
		"items":      len(req.Items),
	}).Info("Order updated")
	return nil
}

// ListItems returns every stored line item as raw rows.
func (s *OrderService) ListItems(ctx context.Context) ([]database.Row, error) {
	rows, err := s.store.Read(ctx, "SELECT * FROM pedido_items")
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	return rows, nil
}

// withItems attaches to each order its items, read with one query whose
// filter must cover every order listed.
func (s *OrderService) withItems(ctx context.Context, orders []models.OrderSummary, filter string, args ...interface{}) ([]models.OrderWithItems, error) {
	result := make([]models.OrderWithItems, 0, len(orders))
	if len(orders) == 0 {
		return result, nil
	}

	items, err := s.itemsByOrder(ctx, filter, args...)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		orderItems := itemsOrEmpty(items[o.ID])
		result = append(result, models.OrderWithItems{
			ID:         o.ID,
			Cliente:    o.Cliente,
			Fecha:      o.Fecha,
			TotalItems: models.TotalQuantity(orderItems),
			Items:      orderItems,
		})
	}
	return result, nil
}

func (s *OrderService) itemsByOrder(ctx context.Context, filter string, args ...interface{}) (map[uint][]models.OrderItemView, error) {
	var items []models.OrderItemView
	if _, err := s.store.Scan(ctx, &items, fmt.Sprintf(itemViewQuery, filter), args...); err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}

	grouped := make(map[uint][]models.OrderItemView)
	for _, item := range items {
		grouped[item.PedidoID] = append(grouped[item.PedidoID], item)
	}
	return grouped, nil
}

func orderExists(ctx context.Context, tx *database.Store, id uint) error {
	_, ok, err := tx.ReadOne(ctx, "SELECT id FROM pedidos WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to get order: %w", err)
	}
	if !ok {
		return ErrOrderNotFound
	}
	return nil
}

func insertItems(ctx context.Context, tx *database.Store, orderID uint, reqItems []OrderItemRequest) error {
	if len(reqItems) == 0 {
		return nil
	}

	items := make([]models.OrderItem, len(reqItems))
	for i, item := range reqItems {
		items[i] = models.OrderItem{
			PedidoID:    orderID,
			ProductoCod: item.Code(),
			Cantidad:    *item.Cantidad,
			Precio:      *item.Precio,
			Tipo:        item.Tipo,
		}
	}

	if err := tx.Insert(ctx, &items); err != nil {
		return fmt.Errorf("failed to create order items: %w", err)
	}
	return nil
}

func itemsOrEmpty(items []models.OrderItemView) []models.OrderItemView {
	if items == nil {
		return []models.OrderItemView{}
	}
	return items
}
