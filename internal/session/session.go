// Package session models the storefront workflow as explicit state: which
// page the user is on, who they are, and what is in their cart. Transitions
// take a session value and return the updated one; a failed transition
// returns the input session untouched.
package session

import (
	"context"
	"errors"
	"fmt"

	"mini_store/internal/domain"
	"mini_store/internal/service"
	"mini_store/internal/store"
)

// State is the page the session is currently on.
type State string

const (
	StateLoggedOut State = "logged_out" // Not authenticated
	StateAdminHome State = "admin_home" // Admin dashboard
	StateStoreHome State = "store_home" // Storefront, carries the cart
)

// ErrWrongPage is returned when a transition is attempted from a state that
// does not offer it, e.g. adding to a cart while logged out.
var ErrWrongPage = errors.New("action not available on this page")

// Session is the owned, serializable workflow state. Created at login,
// discarded at logout; the cart only ever exists on StoreHome.
type Session struct {
	State State             `json:"state"`
	User  *domain.Identity  `json:"user,omitempty"`
	Cart  []domain.CartItem `json:"cart,omitempty"`
}

// New returns the initial logged-out session.
func New() Session {
	return Session{State: StateLoggedOut}
}

// Controller applies workflow transitions by dispatching to the account,
// catalog and order services.
type Controller struct {
	accounts *service.AccountService
	catalog  *service.CatalogService
	orders   *service.OrderService
}

// NewController wires a controller over the three services.
func NewController(accounts *service.AccountService, catalog *service.CatalogService, orders *service.OrderService) *Controller {
	return &Controller{accounts: accounts, catalog: catalog, orders: orders}
}

// Login authenticates and moves to the home page matching the user's role:
// admins land on AdminHome, users on StoreHome. wantRole is the role the
// login page was for; a mismatch is the same generic failure as bad
// credentials, so an admin password cannot be probed via the user login and
// vice versa. On failure the session stays logged out.
func (c *Controller) Login(ctx context.Context, s Session, username, password, wantRole string) (Session, error) {
	user, err := c.accounts.Authenticate(ctx, username, password)
	if err != nil {
		return s, err
	}
	if user.Role != wantRole {
		return s, service.ErrInvalidCredentials
	}
	id := user.Identity()
	next := Session{User: &id, State: StateStoreHome}
	if user.Role == domain.RoleAdmin {
		next.State = StateAdminHome
	}
	return next, nil
}

// Logout returns to the initial state. The cart is dropped unconditionally.
func (c *Controller) Logout(s Session) Session {
	return New()
}

// AddToCart snapshots the product's current name and price into a new cart
// line. Only valid on StoreHome.
func (c *Controller) AddToCart(ctx context.Context, s Session, productID string, qty int) (Session, error) {
	if s.State != StateStoreHome {
		return s, ErrWrongPage
	}
	if qty < 1 {
		return s, fmt.Errorf("%w: quantity must be at least 1", service.ErrInvalidInput)
	}
	product, err := c.catalog.GetProduct(ctx, productID)
	if errors.Is(err, store.ErrNotFound) {
		return s, fmt.Errorf("%w: unknown product", service.ErrInvalidInput)
	}
	if err != nil {
		return s, err
	}
	s.Cart = append(s.Cart, domain.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Qty:       qty,
	})
	return s, nil
}

// PlaceOrder turns the cart into a persisted order. Placement and the cart
// clear are one logical step: the cart is only emptied after the order is
// stored, so a persistence failure loses nothing.
func (c *Controller) PlaceOrder(ctx context.Context, s Session) (Session, domain.Order, error) {
	if s.State != StateStoreHome {
		return s, domain.Order{}, ErrWrongPage
	}
	order, err := c.orders.PlaceOrder(ctx, s.User.ID, s.User.Username, s.Cart)
	if err != nil {
		return s, domain.Order{}, err
	}
	s.Cart = nil
	return s, order, nil
}
