package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/models"
)

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	svc := newOrderService(newTestDB(t))

	_, err := svc.Create(1, OrderInput{})
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestCreateOrderRejectsUnknownProduct(t *testing.T) {
	svc := newOrderService(newTestDB(t))

	_, err := svc.Create(1, OrderInput{
		Items: []OrderItemInput{{ProductID: 999, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrProductUnavailable)
}

func TestCreateOrderRejectsInactiveProduct(t *testing.T) {
	db := newTestDB(t)
	p := seedProduct(t, db, models.Product{Name: "Retired", Price: 100, Status: models.ProductInactive})
	svc := newOrderService(db)

	_, err := svc.Create(1, OrderInput{
		Items: []OrderItemInput{{ProductID: p.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrProductUnavailable)
}

func TestCreateOrderRepricesFromCatalog(t *testing.T) {
	db := newTestDB(t)
	ends := time.Now().Add(time.Hour)
	book := seedProduct(t, db, models.Product{Name: "Book", Price: 100})
	course := seedProduct(t, db, models.Product{
		Name: "Course", Price: 200,
		PromoDiscount: 50, PromoEndsAt: &ends,
	})
	svc := newOrderService(db)

	order, err := svc.Create(7, OrderInput{
		Items: []OrderItemInput{
			{ProductID: book.ID, Quantity: 2},
			{ProductID: course.ID, Quantity: 1},
		},
		PaymentMethod: "card",
	})
	require.NoError(t, err)

	// 2 * 100 + 200 with 50% promo = 300, regardless of any total the
	// client might claim.
	assert.Equal(t, 300.0, order.Total)
	assert.Equal(t, models.OrderPending, order.Status)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Book", order.Items[0].Name)
	assert.Equal(t, 100.0, order.Items[0].Price)
	assert.Equal(t, 100.0, order.Items[1].Price)

	// Items were persisted with the order.
	loaded, err := svc.Find(order.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Items, 2)
}

func TestUpdateStatusFollowsTransitionTable(t *testing.T) {
	db := newTestDB(t)
	p := seedProduct(t, db, models.Product{Name: "Item", Price: 50})
	svc := newOrderService(db)

	order, err := svc.Create(1, OrderInput{
		Items: []OrderItemInput{{ProductID: p.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// pending cannot jump straight to completed.
	_, err = svc.UpdateStatus(order.ID, models.OrderCompleted)
	assert.ErrorIs(t, err, ErrIllegalTransition)

	// pending -> processing -> completed -> refunded is legal.
	for _, status := range []string{models.OrderProcessing, models.OrderCompleted, models.OrderRefunded} {
		order, err = svc.UpdateStatus(order.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, order.Status)
	}

	// refunded is terminal.
	_, err = svc.UpdateStatus(order.ID, models.OrderPending)
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestCanTransitionTable(t *testing.T) {
	assert.True(t, models.CanTransition(models.OrderPending, models.OrderCancelled))
	assert.True(t, models.CanTransition(models.OrderProcessing, models.OrderCancelled))
	assert.False(t, models.CanTransition(models.OrderCancelled, models.OrderPending))
	assert.False(t, models.CanTransition(models.OrderCompleted, models.OrderProcessing))
}
