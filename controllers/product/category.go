package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hanam197/cosmetic-ecommerce-web-be/services"
)

// GET /api/products/category/:category
func GetProductsByCategory(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

		products, err := svc.ByCategory(c.Request.Context(), c.Param("category"), limit)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    products,
			"total":   len(products),
			"message": "Products fetched by category",
		})
	}
}
