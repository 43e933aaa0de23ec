package store

import (
	"context"
	"errors"

	"mini_store/internal/domain"
)

// Logical collection names shared by both backends.
const (
	CollectionUsers    = "users"
	CollectionProducts = "products"
	CollectionOrders   = "orders"
)

var (
	// ErrNotFound is returned when a lookup matches nothing.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateUser is returned when inserting a username that is already taken.
	ErrDuplicateUser = errors.New("username already exists")
)

// Store is the persistence contract over the users, products and orders
// collections. Exactly one implementation is constructed at startup; callers
// never branch on which backend is behind the interface.
type Store interface {
	// InsertUser persists a new user, assigning its id. Fails with
	// ErrDuplicateUser if the username is taken.
	InsertUser(ctx context.Context, user domain.User) (domain.User, error)
	// FindUserByUsername returns the user with the given username or ErrNotFound.
	FindUserByUsername(ctx context.Context, username string) (domain.User, error)

	// InsertProduct persists a new product, assigning its id.
	InsertProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	// FindProductByID returns the product with the given id or ErrNotFound.
	FindProductByID(ctx context.Context, id string) (domain.Product, error)
	// ListProducts returns all products in creation order. An empty slice is
	// a valid result, not an error.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// InsertOrder appends an order, assigning its id.
	InsertOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	// ListOrdersByUsername returns a user's orders in placement order.
	ListOrdersByUsername(ctx context.Context, username string) ([]domain.Order, error)
	// ListOrders returns all orders in placement order.
	ListOrders(ctx context.Context) ([]domain.Order, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
