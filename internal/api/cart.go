package api

import (
	"errors"                      // Sentinel error matching
	"mini_store/internal/service" // Error taxonomy
	"mini_store/internal/session" // Workflow controller and session store
	"net/http"                    // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// Request struct for adding a product to the cart
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"` // Product to add
	Qty       int    `json:"qty" binding:"required,gte=1"`  // Quantity, at least 1
}

// AddToCartHandler appends a product snapshot to the stored cart
func AddToCartHandler(ctrl *session.Controller, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req AddToCartRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		ctx := c.Request.Context()
		// Load the stored session for this user
		sess, err := sessions.Load(ctx, userID.(string))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
			return
		}
		// Apply the add-to-cart transition
		sess, err = ctrl.AddToCart(ctx, sess, req.ProductID, req.Qty)
		if err != nil {
			// Unknown product or bad quantity
			if errors.Is(err, service.ErrInvalidInput) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product or quantity"})
				return
			}
			// Cart actions are only available on the storefront
			if errors.Is(err, session.ErrWrongPage) {
				c.JSON(http.StatusForbidden, gin.H{"error": "Not signed in to the store"})
				return
			}
			// Anything else is a persistence failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
			return
		}
		// Persist the updated cart
		if err := sessions.Save(ctx, userID.(string), sess); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		// Return the updated cart and its running total
		c.JSON(http.StatusOK, gin.H{"cart": sess.Cart, "total": service.ComputeTotal(sess.Cart)})
	}
}

// GetCartHandler returns the stored cart and its running total
func GetCartHandler(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Load the stored session for this user
		sess, err := sessions.Load(c.Request.Context(), userID.(string))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
			return
		}
		// Return the cart contents and total
		c.JSON(http.StatusOK, gin.H{"cart": sess.Cart, "total": service.ComputeTotal(sess.Cart)})
	}
}

// ClearCartHandler empties the stored cart without placing an order
func ClearCartHandler(sessions session.Store) gin.HandlerFunc {
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
		sess.Cart = nil // Drop every line item
		// Persist the emptied cart
		if err := sessions.Save(ctx, userID.(string), sess); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
