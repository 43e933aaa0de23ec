package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"mini_store/internal/domain"
	"mini_store/internal/store"
)

// CatalogService creates and lists products. Products are immutable after
// creation; there is no update or delete.
type CatalogService struct {
	store store.Store
}

// NewCatalogService creates a catalog service over the given backend.
func NewCatalogService(st store.Store) *CatalogService {
	return &CatalogService{store: st}
}

// CreateProduct inserts a product and returns it with its generated id.
// Price is in minor currency units and must not be negative.
func (s *CatalogService) CreateProduct(ctx context.Context, name string, price int64) (domain.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Product{}, fmt.Errorf("%w: product name is required", ErrInvalidInput)
	}
	if price < 0 {
		return domain.Product{}, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	product, err := s.store.InsertProduct(ctx, domain.Product{Name: name, Price: price})
	if err != nil {
		return domain.Product{}, err
	}
	logrus.WithFields(logrus.Fields{
		"product_id": product.ID,
		"name":       product.Name,
		"price":      product.Price,
	}).Info("Product created")
	return product, nil
}

// GetProduct returns a single product by id.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	return s.store.FindProductByID(ctx, id)
}

// ListProducts returns all products in creation order.
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.store.ListProducts(ctx)
}
