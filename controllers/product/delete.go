package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanam197/cosmetic-ecommerce-web-be/services"
)

// DELETE /api/products/:id
// Soft delete: the product is flagged inactive, the record stays.
func DeleteProduct(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svc.SoftDelete(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    product,
			"message": "Product deleted successfully",
		})
	}
}
