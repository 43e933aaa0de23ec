package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mini_store/internal/domain"
)

func TestMemoryStore_UserUniqueness(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	alice, err := s.InsertUser(ctx, domain.User{Username: "alice", Password: "hash1", Role: domain.RoleUser})
	require.NoError(t, err)
	assert.NotEmpty(t, alice.ID)

	// Second insert with the same username is rejected
	_, err = s.InsertUser(ctx, domain.User{Username: "alice", Password: "hash2", Role: domain.RoleUser})
	assert.ErrorIs(t, err, ErrDuplicateUser)

	// The stored record is unchanged
	got, err := s.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "hash1", got.Password)
}

func TestMemoryStore_FindUserNotFound(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.FindUserByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ProductsKeepCreationOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	// Empty catalog lists cleanly
	empty, err := s.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	shirt, err := s.InsertProduct(ctx, domain.Product{Name: "Shirt", Price: 299})
	require.NoError(t, err)
	shoes, err := s.InsertProduct(ctx, domain.Product{Name: "Shoes", Price: 999})
	require.NoError(t, err)

	products, err := s.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, []string{"Shirt", "Shoes"}, []string{products[0].Name, products[1].Name})
	assert.Equal(t, int64(299), products[0].Price)
	assert.Equal(t, int64(999), products[1].Price)
	assert.NotEmpty(t, shirt.ID)
	assert.NotEmpty(t, shoes.ID)
	assert.NotEqual(t, shirt.ID, shoes.ID)

	found, err := s.FindProductByID(ctx, shoes.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shoes", found.Name)

	_, err = s.FindProductByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_OrdersByUsername(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	items := []domain.CartItem{{ProductID: "p1", Name: "Shirt", Price: 299, Qty: 2}}
	_, err := s.InsertOrder(ctx, domain.Order{UserID: "u1", Username: "bob", Items: items, Total: 598, Status: domain.OrderStatusPlaced})
	require.NoError(t, err)
	_, err = s.InsertOrder(ctx, domain.Order{UserID: "u2", Username: "carol", Items: items, Total: 598, Status: domain.OrderStatusPlaced})
	require.NoError(t, err)

	bobs, err := s.ListOrdersByUsername(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, bobs, 1)
	assert.Equal(t, "bob", bobs[0].Username)

	all, err := s.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	none, err := s.ListOrdersByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}
