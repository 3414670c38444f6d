package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/gateway"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/models"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/repositories"
	"github.com/sengaryogesh394-ai/digiaddaworld/config"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/database"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/event"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/logger"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/metrics"
)

// EventPaymentSucceeded fires after a confirmed payment.
const EventPaymentSucceeded = "payment.succeeded"

// PaymentGateway is the provider surface the service needs. Satisfied
// by *gateway.Client; tests substitute a fake.
type PaymentGateway interface {
	KeyID() string
	CreateOrder(ctx context.Context, amount float64, currency, receipt string) (*gateway.GatewayOrder, error)
	VerifySignature(gatewayOrderID, paymentID, signature string) bool
}

// InitiateInput starts a payment for one product.
type InitiateInput struct {
	ProductID     uint   `json:"product_id" validate:"required,gt=0"`
	CustomerName  string `json:"customer_name" validate:"nullable,max=255"`
	CustomerEmail string `json:"customer_email" validate:"nullable,email"`
	CustomerPhone string `json:"customer_phone" validate:"nullable,max=50"`
}

// InitiateResult is what the browser checkout widget needs.
type InitiateResult struct {
	GatewayOrderID string  `json:"gateway_order_id"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	KeyID          string  `json:"key_id"`
	ReceiptID      string  `json:"receipt_id"`
}

// ConfirmInput is the client's relay of the gateway callback.
type ConfirmInput struct {
	GatewayOrderID string `json:"gateway_order_id" validate:"required"`
	PaymentID      string `json:"payment_id" validate:"required"`
	Signature      string `json:"signature" validate:"required"`
}

type PaymentService struct {
	sales    *repositories.SaleRepository
	products *repositories.ProductRepository
	gateway  PaymentGateway
}

func NewPaymentService(sales *repositories.SaleRepository, products *repositories.ProductRepository, gw PaymentGateway) *PaymentService {
	return &PaymentService{sales: sales, products: products, gateway: gw}
}

// Initiate looks up the product, creates a gateway order for its
// current effective price and records a pending Sale. The Sale write is
// best effort: a failure there is logged, not surfaced, because the
// gateway order already exists and the client can still pay.
func (s *PaymentService) Initiate(ctx context.Context, in InitiateInput) (*InitiateResult, error) {
	if s.gateway == nil {
		return nil, gateway.ErrMissingCredentials
	}

	product, err := s.products.FindByID(in.ProductID)
	if err != nil {
		return nil, err
	}

	amount := product.EffectivePrice()
	currency := config.Currency()
	receipt := fmt.Sprintf("rcpt_%d_%d", product.ID, time.Now().Unix())

	order, err := s.gateway.CreateOrder(ctx, amount, currency, receipt)
	if err != nil {
		return nil, fmt.Errorf("payment: gateway order: %w", err)
	}
	metrics.PaymentsInitiated.Inc()

	sale := &models.Sale{
		ProductID:      product.ID,
		ProductName:    product.Name,
		Amount:         amount,
		Currency:       currency,
		CustomerName:   in.CustomerName,
		CustomerEmail:  in.CustomerEmail,
		CustomerPhone:  in.CustomerPhone,
		GatewayOrderID: order.ID,
		ReceiptID:      receipt,
		PaymentStatus:  models.PaymentPending,
		OrderStatus:    models.SaleCreated,
	}
	if err := s.sales.Create(sale); err != nil {
		logger.Error("payment: sale record write failed",
			"gateway_order_id", order.ID, "product_id", product.ID, "error", err)
	}

	return &InitiateResult{
		GatewayOrderID: order.ID,
		Amount:         amount,
		Currency:       currency,
		KeyID:          s.gateway.KeyID(),
		ReceiptID:      receipt,
	}, nil
}

// Confirm verifies the gateway signature and marks the Sale successful.
// A bad signature marks the Sale failed and rejects the call.
func (s *PaymentService) Confirm(in ConfirmInput) (*models.Sale, error) {
	sale, err := s.sales.FindByGatewayOrderID(in.GatewayOrderID)
	if err != nil {
		return nil, err
	}

	if s.gateway == nil {
		return nil, gateway.ErrMissingCredentials
	}

	if !s.gateway.VerifySignature(in.GatewayOrderID, in.PaymentID, in.Signature) {
		sale.PaymentStatus = models.PaymentFailed
		if err := s.sales.Update(sale); err != nil {
			logger.Error("payment: mark failed", "sale_id", sale.ID, "error", err)
		}
		metrics.PaymentsConfirmed.WithLabelValues(models.PaymentFailed).Inc()
		logger.Warn("payment: signature rejected", "gateway_order_id", in.GatewayOrderID)
		return nil, ErrInvalidSignature
	}

	sale.PaymentID = in.PaymentID
	markSuccess(sale)
	if err := s.sales.Update(sale); err != nil {
		return nil, fmt.Errorf("payment: confirm: %w", err)
	}

	metrics.PaymentsConfirmed.WithLabelValues(models.PaymentSuccess).Inc()
	event.FireAsync(EventPaymentSucceeded, sale)
	logger.Info("payment: confirmed", "sale_id", sale.ID, "gateway_order_id", sale.GatewayOrderID)
	return sale, nil
}

// UpdatePaymentStatus is the generic admin sale updater. Setting
// success carries the completion side effects: order status completed
// and the completion timestamp, stamped once.
func (s *PaymentService) UpdatePaymentStatus(id uint, status string) (*models.Sale, error) {
	sale, err := s.sales.FindByID(id)
	if err != nil {
		return nil, err
	}

	if status == models.PaymentSuccess {
		markSuccess(sale)
	} else {
		sale.PaymentStatus = status
	}

	if err := s.sales.Update(sale); err != nil {
		if database.IsDuplicateKey(err) {
			return nil, ErrDuplicateSale
		}
		return nil, fmt.Errorf("payment: update sale: %w", err)
	}
	return sale, nil
}

func markSuccess(sale *models.Sale) {
	sale.PaymentStatus = models.PaymentSuccess
	sale.OrderStatus = models.SaleCompleted
	if sale.PaymentCompletedAt == nil {
		now := time.Now().UTC()
		sale.PaymentCompletedAt = &now
	}
}

// ListSales exposes the audit records to the back office.
func (s *PaymentService) ListSales(f repositories.SaleFilter) ([]models.Sale, database.Pagination, error) {
	return s.sales.List(f)
}

// SweepPending reports sales still pending past the cutoff age. It only
// observes: orphaned pending sales are an expected byproduct of
// abandoned checkouts and are never mutated.
func (s *PaymentService) SweepPending(age time.Duration) (int64, error) {
	n, err := s.sales.CountPendingOlderThan(time.Now().Add(-age))
	if err != nil {
		return 0, fmt.Errorf("payment: pending sweep: %w", err)
	}
	metrics.PendingSales.Set(float64(n))
	if n > 0 {
		logger.Info("payment: orphaned pending sales", "count", n, "older_than", age)
	}
	return n, nil
}
