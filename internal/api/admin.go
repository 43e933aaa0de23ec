package api

import (
	"errors"                      // Sentinel error matching
	"mini_store/internal/service" // Services and error taxonomy
	"mini_store/internal/utils"   // Redis cache helpers
	"net/http"                    // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// Request struct for creating a user from the admin dashboard
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Request struct for adding a product. Price is in minor currency units.
type CreateProductRequest struct {
	Name  string `json:"name" binding:"required"` // Product name must be provided
	Price int64  `json:"price" binding:"gte=0"`   // Price must not be negative
}

// CreateUserHandler lets an admin create a regular user account
func CreateUserHandler(accounts *service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Create the user with the default role
		if _, err := accounts.Register(c.Request.Context(), req.Username, req.Password, ""); err != nil {
			// Duplicate usernames are rejected
			if errors.Is(err, service.ErrDuplicateUser) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
				return
			}
			// Bad input is rejected
			if errors.Is(err, service.ErrInvalidInput) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
				return
			}
			// Anything else is a persistence failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
	}
}

// CreateProductHandler lets an admin add a product to the catalog and
// invalidates the cached product list
func CreateProductHandler(catalog *service.CatalogService, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		ctx := c.Request.Context()
		// Create the product
		product, err := catalog.CreateProduct(ctx, req.Name, req.Price)
		if err != nil {
			// Empty name or negative price is rejected
			if errors.Is(err, service.ErrInvalidInput) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product name or price"})
				return
			}
			// Anything else is a persistence failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		// Invalidate the cached product list
		if cache != nil {
			_ = cache.Delete(ctx, productsCacheKey)
		}
		// Return the created product
		c.JSON(http.StatusCreated, gin.H{"product": product})
	}
}

// ListAllOrdersHandler returns every placed order for the admin dashboard
func ListAllOrdersHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Fetch all orders in placement order
		all, err := orders.ListAllOrders(c.Request.Context())
		if err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": all}) // Return all orders
	}
}
