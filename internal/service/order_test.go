package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mini_store/internal/domain"
	"mini_store/internal/store"
)

// failingStore wraps a real backend but refuses order inserts, standing in
// for an unreachable database.
type failingStore struct {
	store.Store
}

var errBackendDown = errors.New("backend unavailable")

func (f failingStore) InsertOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	return domain.Order{}, errBackendDown
}

func TestComputeTotal(t *testing.T) {
	items := []domain.CartItem{
		{ProductID: "p1", Name: "Shirt", Price: 299, Qty: 2},
		{ProductID: "p2", Name: "Shoes", Price: 999, Qty: 1},
	}
	assert.Equal(t, int64(1597), ComputeTotal(items))
	assert.Equal(t, int64(0), ComputeTotal(nil))
}

func TestOrderService_PlaceOrder(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	svc := NewOrderService(st)

	items := []domain.CartItem{
		{ProductID: "p1", Name: "Shirt", Price: 299, Qty: 2},
		{ProductID: "p2", Name: "Shoes", Price: 999, Qty: 1},
	}
	order, err := svc.PlaceOrder(ctx, "u1", "bob", items)
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "bob", order.Username)
	assert.Equal(t, int64(1597), order.Total)
	assert.Equal(t, domain.OrderStatusPlaced, order.Status)
	assert.Len(t, order.Items, 2)

	// The order is retrievable under the user's name
	history, err := svc.ListOrders(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, int64(1597), history[0].Total)
}

func TestOrderService_EmptyCart(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	svc := NewOrderService(st)

	_, err := svc.PlaceOrder(ctx, "u1", "bob", nil)
	assert.ErrorIs(t, err, ErrEmptyCart)

	// Nothing was persisted
	orders, err := st.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_BadQuantity(t *testing.T) {
	svc := NewOrderService(store.NewMemoryStore())
	_, err := svc.PlaceOrder(context.Background(), "u1", "bob", []domain.CartItem{
		{ProductID: "p1", Name: "Shirt", Price: 299, Qty: 0},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestOrderService_PersistenceFailure(t *testing.T) {
	svc := NewOrderService(failingStore{Store: store.NewMemoryStore()})
	_, err := svc.PlaceOrder(context.Background(), "u1", "bob", []domain.CartItem{
		{ProductID: "p1", Name: "Shirt", Price: 299, Qty: 1},
	})
	assert.ErrorIs(t, err, errBackendDown)
}
