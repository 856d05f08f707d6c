package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/hanam197/cosmetic-ecommerce-web-be/controllers/product"
	"github.com/hanam197/cosmetic-ecommerce-web-be/services"
)

// SetupProductRoutes registers all "/api/products" endpoints.
func SetupProductRoutes(r *gin.Engine, svc *services.ProductService) {
	products := r.Group("/api/products")
	{
		products.GET("", productcontroller.GetProducts(svc))
		products.POST("", productcontroller.CreateProduct(svc))
		products.GET("/search", productcontroller.SearchProducts(svc))
		products.GET("/category/:category", productcontroller.GetProductsByCategory(svc))
		products.GET("/export-excel", productcontroller.ExportProductsToExcel(svc))
		products.GET("/:id", productcontroller.GetProductByID(svc))
		products.PUT("/:id", productcontroller.UpdateProduct(svc))
		products.DELETE("/:id", productcontroller.DeleteProduct(svc))
	}
}
