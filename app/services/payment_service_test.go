package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/gateway"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/models"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/repositories"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/database"
)

// fakeGateway is an in-memory PaymentGateway.
type fakeGateway struct {
	orders    int
	lastOrder gateway.GatewayOrder
	failNext  bool
	validSig  string
}

func (f *fakeGateway) KeyID() string { return "rzp_test_key" }

func (f *fakeGateway) CreateOrder(_ context.Context, amount float64, currency, receipt string) (*gateway.GatewayOrder, error) {
	if f.failNext {
		return nil, fmt.Errorf("gateway down")
	}
	f.orders++
	f.lastOrder = gateway.GatewayOrder{
		ID:       fmt.Sprintf("order_fake_%d", f.orders),
		Amount:   int64(amount * 100),
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
	}
	return &f.lastOrder, nil
}

func (f *fakeGateway) VerifySignature(_, _, signature string) bool {
	return signature == f.validSig
}

func newPaymentService(db *gorm.DB, gw PaymentGateway) *PaymentService {
	return NewPaymentService(
		repositories.NewSaleRepository(db),
		repositories.NewProductRepository(db),
		gw,
	)
}

func TestInitiateUnknownProduct(t *testing.T) {
	svc := newPaymentService(newTestDB(t), &fakeGateway{})

	_, err := svc.Initiate(context.Background(), InitiateInput{ProductID: 404})
	assert.True(t, database.IsNotFound(err))
}

func TestInitiateWritesPendingSale(t *testing.T) {
	db := newTestDB(t)
	p := seedProduct(t, db, models.Product{Name: "EBook", Price: 250})
	gw := &fakeGateway{}
	svc := newPaymentService(db, gw)

	result, err := svc.Initiate(context.Background(), InitiateInput{
		ProductID:     p.ID,
		CustomerEmail: "buyer@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, gw.lastOrder.ID, result.GatewayOrderID)
	assert.Equal(t, 250.0, result.Amount)
	assert.Equal(t, "rzp_test_key", result.KeyID)

	var sale models.Sale
	require.NoError(t, db.Where("gateway_order_id = ?", result.GatewayOrderID).First(&sale).Error)
	assert.Equal(t, models.PaymentPending, sale.PaymentStatus)
	assert.Equal(t, models.SaleCreated, sale.OrderStatus)
	assert.Equal(t, "EBook", sale.ProductName)
	assert.Equal(t, "buyer@example.com", sale.CustomerEmail)
	assert.Nil(t, sale.PaymentCompletedAt)
}

func TestInitiatePropagatesGatewayFailure(t *testing.T) {
	db := newTestDB(t)
	p := seedProduct(t, db, models.Product{Name: "EBook", Price: 250})
	svc := newPaymentService(db, &fakeGateway{failNext: true})

	_, err := svc.Initiate(context.Background(), InitiateInput{ProductID: p.ID})
	assert.Error(t, err)

	// No sale row for a gateway order that never existed.
	var count int64
	db.Model(&models.Sale{}).Count(&count)
	assert.Zero(t, count)
}

func TestInitiateWithoutGateway(t *testing.T) {
	svc := newPaymentService(newTestDB(t), nil)

	_, err := svc.Initiate(context.Background(), InitiateInput{ProductID: 1})
	assert.ErrorIs(t, err, gateway.ErrMissingCredentials)
}

func TestConfirmMarksSaleSuccessful(t *testing.T) {
	db := newTestDB(t)
	p := seedProduct(t, db, models.Product{Name: "EBook", Price: 99})
	gw := &fakeGateway{validSig: "good-signature"}
	svc := newPaymentService(db, gw)

	result, err := svc.Initiate(context.Background(), InitiateInput{ProductID: p.ID})
	require.NoError(t, err)

	sale, err := svc.Confirm(ConfirmInput{
		GatewayOrderID: result.GatewayOrderID,
		PaymentID:      "pay_123",
		Signature:      "good-signature",
	})
	require.NoError(t, err)

	assert.Equal(t, models.PaymentSuccess, sale.PaymentStatus)
	assert.Equal(t, models.SaleCompleted, sale.OrderStatus)
	assert.Equal(t, "pay_123", sale.PaymentID)
	require.NotNil(t, sale.PaymentCompletedAt)
	assert.WithinDuration(t, time.Now(), *sale.PaymentCompletedAt, time.Minute)
}

func TestConfirmRejectsBadSignature(t *testing.T) {
	db := newTestDB(t)
	p := seedProduct(t, db, models.Product{Name: "EBook", Price: 99})
	gw := &fakeGateway{validSig: "good-signature"}
	svc := newPaymentService(db, gw)

	result, err := svc.Initiate(context.Background(), InitiateInput{ProductID: p.ID})
	require.NoError(t, err)

	_, err = svc.Confirm(ConfirmInput{
		GatewayOrderID: result.GatewayOrderID,
		PaymentID:      "pay_123",
		Signature:      "forged",
	})
	assert.ErrorIs(t, err, ErrInvalidSignature)

	var sale models.Sale
	require.NoError(t, db.Where("gateway_order_id = ?", result.GatewayOrderID).First(&sale).Error)
	assert.Equal(t, models.PaymentFailed, sale.PaymentStatus)
	assert.Nil(t, sale.PaymentCompletedAt)
}

func TestConfirmUnknownSale(t *testing.T) {
	svc := newPaymentService(newTestDB(t), &fakeGateway{})

	_, err := svc.Confirm(ConfirmInput{GatewayOrderID: "order_missing", PaymentID: "p", Signature: "s"})
	assert.True(t, database.IsNotFound(err))
}

func TestUpdatePaymentStatusSuccessSideEffects(t *testing.T) {
	db := newTestDB(t)
	sale := models.Sale{
		ProductID: 1, ProductName: "EBook", Amount: 99, Currency: "INR",
		GatewayOrderID: "order_abc", PaymentStatus: models.PaymentPending,
		OrderStatus: models.SaleCreated,
	}
	require.NoError(t, db.Create(&sale).Error)
	svc := newPaymentService(db, &fakeGateway{})

	updated, err := svc.UpdatePaymentStatus(sale.ID, models.PaymentSuccess)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentSuccess, updated.PaymentStatus)
	assert.Equal(t, models.SaleCompleted, updated.OrderStatus)
	assert.NotNil(t, updated.PaymentCompletedAt)
}

func TestDuplicateGatewayOrderIDRejected(t *testing.T) {
	db := newTestDB(t)

	first := models.Sale{
		ProductID: 1, ProductName: "A", Amount: 10, Currency: "INR",
		GatewayOrderID: "order_dup",
	}
	require.NoError(t, db.Create(&first).Error)

	second := models.Sale{
		ProductID: 2, ProductName: "B", Amount: 20, Currency: "INR",
		GatewayOrderID: "order_dup",
	}
	err := db.Create(&second).Error
	require.Error(t, err)
	assert.True(t, database.IsDuplicateKey(err))
}

func TestSweepPendingCountsStale(t *testing.T) {
	db := newTestDB(t)

	old := models.Sale{
		ProductID: 1, ProductName: "A", Amount: 10, Currency: "INR",
		GatewayOrderID: "order_old", PaymentStatus: models.PaymentPending,
	}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Model(&old).Update("created_at", time.Now().Add(-48*time.Hour)).Error)

	fresh := models.Sale{
		ProductID: 2, ProductName: "B", Amount: 20, Currency: "INR",
		GatewayOrderID: "order_fresh", PaymentStatus: models.PaymentPending,
	}
	require.NoError(t, db.Create(&fresh).Error)

	svc := newPaymentService(db, &fakeGateway{})
	n, err := svc.SweepPending(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// The sweep never mutates.
	var still models.Sale
	require.NoError(t, db.Where("gateway_order_id = ?", "order_old").First(&still).Error)
	assert.Equal(t, models.PaymentPending, still.PaymentStatus)
}
