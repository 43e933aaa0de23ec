package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"mini_store/internal/domain"
	"mini_store/internal/store"
)

// OrderService computes cart totals and persists orders.
type OrderService struct {
	store store.Store
}

// NewOrderService creates an order service over the given backend.
func NewOrderService(st store.Store) *OrderService {
	return &OrderService{store: st}
}

// ComputeTotal sums price x qty over all items. Integer minor units, so the
// result is exact.
func ComputeTotal(items []domain.CartItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}

// PlaceOrder snapshots the cart into an order and persists it. The order
// total is fixed here and never recomputed. If persistence fails no order
// exists and the caller must keep its cart.
func (s *OrderService) PlaceOrder(ctx context.Context, userID, username string, items []domain.CartItem) (domain.Order, error) {
	if len(items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}
	for _, item := range items {
		if item.Qty < 1 {
			return domain.Order{}, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
		}
	}
	order := domain.Order{
		UserID:   userID,
		Username: username,
		Items:    items,
		Total:    ComputeTotal(items),
		Status:   domain.OrderStatusPlaced,
	}
	placed, err := s.store.InsertOrder(ctx, order)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"total":   order.Total,
			"error":   err.Error(),
		}).Error("Order placement failed")
		return domain.Order{}, err
	}
	logrus.WithFields(logrus.Fields{
		"order_id": placed.ID,
		"user_id":  userID,
		"username": username,
		"items":    len(items),
		"total":    placed.Total,
	}).Info("Order placed")
	return placed, nil
}

// ListOrders returns a user's orders in placement order.
func (s *OrderService) ListOrders(ctx context.Context, username string) ([]domain.Order, error) {
	return s.store.ListOrdersByUsername(ctx, username)
}

// ListAllOrders returns every order in placement order, for the admin view.
func (s *OrderService) ListAllOrders(ctx context.Context) ([]domain.Order, error) {
	return s.store.ListOrders(ctx)
}
