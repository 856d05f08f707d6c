package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanam197/cosmetic-ecommerce-web-be/services"
)

// GET /api/products/:id
// Soft-deleted products are reported as not found.
func GetProductByID(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    product,
			"message": "Product fetched successfully",
		})
	}
}
