package services

import (
	"fmt"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/models"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/repositories"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/database"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/event"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/logger"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/metrics"
)

// Event names fired by the order flow.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// OrderItemInput is one requested line. Only the product reference and
// quantity are trusted; name, price and image are snapshotted
// server-side from the current catalog.
type OrderItemInput struct {
	ProductID uint `json:"product_id" validate:"required,gt=0"`
	Quantity  int  `json:"quantity" validate:"required,gte=1"`
}

// OrderInput is the checkout submission. Any client-computed total is
// ignored and recomputed from current prices.
type OrderInput struct {
	Items           []OrderItemInput `json:"items"`
	ShippingAddress string           `json:"shipping_address" validate:"nullable"`
	PaymentMethod   string           `json:"payment_method" validate:"nullable,max=50"`
}

type OrderService struct {
	orders   *repositories.OrderRepository
	products *repositories.ProductRepository
}

func NewOrderService(orders *repositories.OrderRepository, products *repositories.ProductRepository) *OrderService {
	return &OrderService{orders: orders, products: products}
}

func (s *OrderService) List(f repositories.OrderFilter) ([]models.Order, database.Pagination, error) {
	return s.orders.List(f)
}

func (s *OrderService) Find(id uint) (*models.Order, error) {
	return s.orders.FindByID(id)
}

// Create places an order for userID. Every line is re-priced from the
// current product record; unknown or non-purchasable products reject
// the whole order.
func (s *OrderService) Create(userID uint, in OrderInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	var (
		items []models.OrderItem
		total float64
	)
	for _, line := range in.Items {
		product, err := s.products.FindByID(line.ProductID)
		if err != nil {
			if database.IsNotFound(err) {
				return nil, fmt.Errorf("%w: product %d", ErrProductUnavailable, line.ProductID)
			}
			return nil, fmt.Errorf("orders: load product %d: %w", line.ProductID, err)
		}
		if !product.Purchasable() {
			return nil, fmt.Errorf("%w: product %d", ErrProductUnavailable, product.ID)
		}

		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}
		price := product.EffectivePrice()

		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}

		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     price,
			Quantity:  qty,
			Image:     image,
		})
		total += price * float64(qty)
	}

	order := &models.Order{
		UserID:          userID,
		Items:           items,
		Total:           total,
		Status:          models.OrderPending,
		PaymentMethod:   in.PaymentMethod,
		ShippingAddress: in.ShippingAddress,
	}
	if err := s.orders.Create(order); err != nil {
		return nil, fmt.Errorf("orders: create: %w", err)
	}

	metrics.OrdersCreated.Inc()
	event.FireAsync(EventOrderCreated, order)
	logger.Info("orders: created", "order_id", order.ID, "user_id", userID, "total", total)
	return order, nil
}

// UpdateStatus moves an order along the legal transition table:
// pending to processing or cancelled, processing to completed or
// cancelled, completed to refunded.
func (s *OrderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	order, err := s.orders.FindByID(id)
	if err != nil {
		return nil, err
	}

	if !models.CanTransition(order.Status, status) {
		return nil, fmt.Errorf("%w: %s to %s", ErrIllegalTransition, order.Status, status)
	}

	if err := s.orders.UpdateStatus(id, status); err != nil {
		return nil, fmt.Errorf("orders: update status: %w", err)
	}
	order.Status = status

	event.FireAsync(EventOrderStatusChanged, order)
	logger.Info("orders: status changed", "order_id", id, "status", status)
	return order, nil
}
