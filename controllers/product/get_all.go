package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hanam197/cosmetic-ecommerce-web-be/services"
)

// GET /api/products
// Query params: page, limit, category, search, sort
// (sort: newest | price-asc | price-desc | rating | popular)
func GetProducts(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

		result, err := svc.List(c.Request.Context(), services.ListParams{
			Page:     page,
			Limit:    limit,
			Category: c.Query("category"),
			Search:   c.Query("search"),
			Sort:     c.Query("sort"),
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"data":       result.Products,
			"pagination": result.Pagination,
			"message":    "Products fetched successfully",
		})
	}
}
