package api

import (
	"mini_store/internal/domain"  // Domain models
	"mini_store/internal/service" // Catalog service
	"mini_store/internal/utils"   // Redis cache helpers
	"net/http"                    // HTTP status codes
	"time"                        // Cache TTL

	"github.com/gin-gonic/gin" // Gin web framework
)

// productsCacheKey caches the full product list; there is no pagination
// because the catalog is a single storefront page.
const productsCacheKey = "products:all"

// ListProductsHandler returns all products in creation order. The list is
// cached for 60 seconds when Redis is configured and invalidated whenever an
// admin adds a product.
func ListProductsHandler(catalog *service.CatalogService, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		// Try the cache first when Redis is configured
		if cache != nil {
			var cached []domain.Product
			found, err := cache.Get(ctx, productsCacheKey, &cached)
			if err == nil && found {
				// Return cached product list
				c.JSON(http.StatusOK, gin.H{"products": cached, "cached": true})
				return
			}
		}
		// Fetch from the store
		products, err := catalog.ListProducts(ctx)
		if err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		// Cache the list for 60 seconds
		if cache != nil {
			_ = cache.Set(ctx, productsCacheKey, products, 60*time.Second)
		}
		c.JSON(http.StatusOK, gin.H{"products": products, "cached": false}) // Return product list
	}
}
