package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanam197/cosmetic-ecommerce-web-be/services"
)

// SetupRoutes is the single entry-point that wires up the product and cart
// route groups.
func SetupRoutes(r *gin.Engine, products *services.ProductService, carts *services.CartService) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	SetupProductRoutes(r, products)
	SetupCartRoutes(r, carts)
}
