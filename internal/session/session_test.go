package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mini_store/internal/domain"
	"mini_store/internal/service"
	"mini_store/internal/store"
)

// brokenOrders wraps a real backend but refuses order inserts.
type brokenOrders struct {
	store.Store
}

var errDown = errors.New("backend unavailable")

func (b brokenOrders) InsertOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	return domain.Order{}, errDown
}

func newController(st store.Store) *Controller {
	return NewController(
		service.NewAccountService(st),
		service.NewCatalogService(st),
		service.NewOrderService(st),
	)
}

func TestWorkflow_FullLifecycle(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	accounts := service.NewAccountService(st)
	catalog := service.NewCatalogService(st)
	orders := service.NewOrderService(st)
	ctrl := NewController(accounts, catalog, orders)

	// Setup: bootstrap admin, stock the catalog, create a user
	require.NoError(t, accounts.BootstrapAdmin(ctx, "admin", "admin"))
	shirt, err := catalog.CreateProduct(ctx, "Shirt", 299)
	require.NoError(t, err)
	shoes, err := catalog.CreateProduct(ctx, "Shoes", 999)
	require.NoError(t, err)
	_, err = accounts.Register(ctx, "bob", "hunter2", "")
	require.NoError(t, err)

	var sess Session

	t.Run("AdminLogin", func(t *testing.T) {
		s, err := ctrl.Login(ctx, New(), "admin", "admin", domain.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, StateAdminHome, s.State)
	})

	t.Run("UserLogin", func(t *testing.T) {
		sess, err = ctrl.Login(ctx, New(), "bob", "hunter2", domain.RoleUser)
		require.NoError(t, err)
		assert.Equal(t, StateStoreHome, sess.State)
		assert.Equal(t, "bob", sess.User.Username)
		assert.Empty(t, sess.Cart)
	})

	t.Run("FillCart", func(t *testing.T) {
		sess, err = ctrl.AddToCart(ctx, sess, shirt.ID, 2)
		require.NoError(t, err)
		sess, err = ctrl.AddToCart(ctx, sess, shoes.ID, 1)
		require.NoError(t, err)
		require.Len(t, sess.Cart, 2)
		assert.Equal(t, int64(1597), service.ComputeTotal(sess.Cart))
	})

	t.Run("PlaceOrder", func(t *testing.T) {
		var order domain.Order
		sess, order, err = ctrl.PlaceOrder(ctx, sess)
		require.NoError(t, err)
		assert.Equal(t, int64(1597), order.Total)
		assert.Equal(t, domain.OrderStatusPlaced, order.Status)
		// Cart is reset, session stays on the storefront
		assert.Empty(t, sess.Cart)
		assert.Equal(t, StateStoreHome, sess.State)

		// The order is retrievable under bob's name
		history, err := orders.ListOrders(ctx, "bob")
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, "bob", history[0].Username)
		assert.Equal(t, int64(1597), history[0].Total)
	})

	t.Run("Logout", func(t *testing.T) {
		sess = ctrl.Logout(sess)
		assert.Equal(t, StateLoggedOut, sess.State)
		assert.Nil(t, sess.User)
		assert.Empty(t, sess.Cart)
	})
}

func TestWorkflow_LoginFailures(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	ctrl := newController(st)
	accounts := service.NewAccountService(st)

	require.NoError(t, accounts.BootstrapAdmin(ctx, "admin", "admin"))
	_, err := accounts.Register(ctx, "bob", "hunter2", "")
	require.NoError(t, err)

	t.Run("BadPassword", func(t *testing.T) {
		s, err := ctrl.Login(ctx, New(), "bob", "wrong", domain.RoleUser)
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
		assert.Equal(t, StateLoggedOut, s.State)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		s, err := ctrl.Login(ctx, New(), "nobody", "x", domain.RoleUser)
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
		assert.Equal(t, StateLoggedOut, s.State)
	})

	t.Run("RoleMismatchIsIndistinguishable", func(t *testing.T) {
		// A valid user cannot log into the admin page, and the error is the
		// same generic one as bad credentials
		s, userOnAdmin := ctrl.Login(ctx, New(), "bob", "hunter2", domain.RoleAdmin)
		assert.ErrorIs(t, userOnAdmin, service.ErrInvalidCredentials)
		assert.Equal(t, StateLoggedOut, s.State)

		// And the admin cannot log into the storefront
		_, adminOnStore := ctrl.Login(ctx, New(), "admin", "admin", domain.RoleUser)
		assert.ErrorIs(t, adminOnStore, service.ErrInvalidCredentials)
	})
}

func TestWorkflow_CartGuards(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	ctrl := newController(st)
	catalog := service.NewCatalogService(st)
	accounts := service.NewAccountService(st)

	shirt, err := catalog.CreateProduct(ctx, "Shirt", 299)
	require.NoError(t, err)
	_, err = accounts.Register(ctx, "bob", "hunter2", "")
	require.NoError(t, err)

	t.Run("LoggedOutCannotShop", func(t *testing.T) {
		_, err := ctrl.AddToCart(ctx, New(), shirt.ID, 1)
		assert.ErrorIs(t, err, ErrWrongPage)
		_, _, err = ctrl.PlaceOrder(ctx, New())
		assert.ErrorIs(t, err, ErrWrongPage)
	})

	sess, err := ctrl.Login(ctx, New(), "bob", "hunter2", domain.RoleUser)
	require.NoError(t, err)

	t.Run("UnknownProduct", func(t *testing.T) {
		s, err := ctrl.AddToCart(ctx, sess, "missing-id", 1)
		assert.ErrorIs(t, err, service.ErrInvalidInput)
		assert.Empty(t, s.Cart)
	})

	t.Run("ZeroQuantity", func(t *testing.T) {
		s, err := ctrl.AddToCart(ctx, sess, shirt.ID, 0)
		assert.ErrorIs(t, err, service.ErrInvalidInput)
		assert.Empty(t, s.Cart)
	})

	t.Run("EmptyCartOrder", func(t *testing.T) {
		s, _, err := ctrl.PlaceOrder(ctx, sess)
		assert.ErrorIs(t, err, service.ErrEmptyCart)
		assert.Equal(t, StateStoreHome, s.State)
	})

	t.Run("SnapshotCopiesNameAndPrice", func(t *testing.T) {
		s, err := ctrl.AddToCart(ctx, sess, shirt.ID, 2)
		require.NoError(t, err)
		require.Len(t, s.Cart, 1)
		assert.Equal(t, "Shirt", s.Cart[0].Name)
		assert.Equal(t, int64(299), s.Cart[0].Price)
		assert.Equal(t, 2, s.Cart[0].Qty)
	})
}

func TestWorkflow_FailedPlacementKeepsCart(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	catalog := service.NewCatalogService(st)
	accounts := service.NewAccountService(st)

	shirt, err := catalog.CreateProduct(ctx, "Shirt", 299)
	require.NoError(t, err)
	_, err = accounts.Register(ctx, "bob", "hunter2", "")
	require.NoError(t, err)

	// Controller whose order service sits on a broken backend
	ctrl := NewController(
		accounts,
		catalog,
		service.NewOrderService(brokenOrders{Store: st}),
	)

	sess, err := ctrl.Login(ctx, New(), "bob", "hunter2", domain.RoleUser)
	require.NoError(t, err)
	sess, err = ctrl.AddToCart(ctx, sess, shirt.ID, 2)
	require.NoError(t, err)

	after, _, err := ctrl.PlaceOrder(ctx, sess)
	assert.ErrorIs(t, err, errDown)
	// Placement and cart-clear are one logical step: on failure the cart
	// is exactly what it was
	assert.Equal(t, sess.Cart, after.Cart)
	assert.Equal(t, StateStoreHome, after.State)
}
