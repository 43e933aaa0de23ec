package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"mini_store/internal/domain"
)

// MemoryStore is the fallback backend used when no MongoDB connection string
// is configured. Records live in ordered slices so listing preserves
// creation order; nothing survives a process restart. A single mutex guards
// all three collections, which is what makes concurrent sessions safe here.
type MemoryStore struct {
	mu       sync.RWMutex
	users    []domain.User
	products []domain.Product
	orders   []domain.Order
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) InsertUser(ctx context.Context, user domain.User) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return domain.User{}, ErrDuplicateUser
		}
	}
	user.ID = uuid.NewString()
	s.users = append(s.users, user)
	return user, nil
}

func (s *MemoryStore) FindUserByUsername(ctx context.Context, username string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, ErrNotFound
}

func (s *MemoryStore) InsertProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product.ID = uuid.NewString()
	product.CreatedAt = time.Now().UTC()
	s.products = append(s.products, product)
	return product, nil
}

func (s *MemoryStore) FindProductByID(ctx context.Context, id string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrNotFound
}

func (s *MemoryStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *MemoryStore) InsertOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = uuid.NewString()
	order.CreatedAt = time.Now().UTC()
	s.orders = append(s.orders, order)
	return order, nil
}

func (s *MemoryStore) ListOrdersByUsername(ctx context.Context, username string) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Order
	for _, o := range s.orders {
		if o.Username == username {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *MemoryStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}
