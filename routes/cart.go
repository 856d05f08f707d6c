package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/hanam197/cosmetic-ecommerce-web-be/controllers/cart"
	"github.com/hanam197/cosmetic-ecommerce-web-be/services"
)

// SetupCartRoutes registers all "/api/cart" endpoints.
func SetupCartRoutes(r *gin.Engine, svc *services.CartService) {
	cart := r.Group("/api/cart")
	{
		cart.GET("/admin/all", cartControllers.GetAllCarts(svc))
		cart.GET("/:userId", cartControllers.GetCart(svc))
		cart.POST("/:userId/add", cartControllers.AddToCart(svc))
		cart.PATCH("/:userId/item/:itemId", cartControllers.UpdateCartItem(svc))
		cart.DELETE("/:userId/item/:itemId", cartControllers.RemoveCartItem(svc))
		cart.DELETE("/:userId/clear", cartControllers.ClearCart(svc))
	}
}
