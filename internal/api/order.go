package api

import (
	"errors"                      // Sentinel error matching
	"mini_store/internal/service" // Order service and error taxonomy
	"mini_store/internal/session" // Workflow controller and session store
	"net/http"                    // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// PlaceOrderHandler turns the stored cart into an order. The cart is only
// cleared after the order is persisted, so a failed placement leaves the
// cart exactly as it was.
func PlaceOrderHandler(ctrl *session.Controller, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		ctx := c.Request.Context()
		// Load the stored session for this user
		sess, err := sessions.Load(ctx, userID.(string))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
			return
		}
		// Apply the place-order transition
		sess, order, err := ctrl.PlaceOrder(ctx, sess)
		if err != nil {
			// An empty cart cannot be ordered
			if errors.Is(err, service.ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
				return
			}
			// Ordering is only available on the storefront
			if errors.Is(err, session.ErrWrongPage) {
				c.JSON(http.StatusForbidden, gin.H{"error": "Not signed in to the store"})
				return
			}
			// Persistence failed; the cart was not touched
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}
		// Persist the emptied cart now that the order exists
		if err := sessions.Save(ctx, userID.(string), sess); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
			return
		}
		// Return the placed order
		c.JSON(http.StatusCreated, gin.H{"order": order})
	}
}

// ListOrdersHandler returns the authenticated user's order history
func ListOrdersHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, exists := c.Get("username") // Get username from context
		// Check if username exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Fetch the user's orders
		history, err := orders.ListOrders(c.Request.Context(), username.(string))
		if err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": history}) // Return order history
	}
}
