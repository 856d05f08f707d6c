package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hanam197/cosmetic-ecommerce-web-be/services"
)

// GET /api/products/search?q=keyword
// Relevance-ranked text search over name, description and brand.
func SearchProducts(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

		products, err := svc.Search(c.Request.Context(), c.Query("q"), limit)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    products,
			"total":   len(products),
			"message": "Products searched successfully",
		})
	}
}
