package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanam197/cosmetic-ecommerce-web-be/repository"
	"github.com/hanam197/cosmetic-ecommerce-web-be/services"
)

type UpdateProductInput struct {
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	Price         *float64  `json:"price"`
	OriginalPrice *float64  `json:"originalPrice"`
	Category      *string   `json:"category"`
	Stock         *int      `json:"stock"`
	Image         *string   `json:"image"`
	Images        *[]string `json:"images"`
	Ingredients   *[]string `json:"ingredients"`
	Rating        *float64  `json:"rating"`
	Reviews       *int      `json:"reviews"`
	Brand         *string   `json:"brand"`
	IsActive      *bool     `json:"isActive"`
}

// PUT /api/products/:id
// Partial update; id and createdAt are immutable and ignored if sent.
func UpdateProduct(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body: " + err.Error()})
			return
		}

		product, err := svc.Update(c.Request.Context(), c.Param("id"), repository.ProductUpdate{
			Name:          input.Name,
			Description:   input.Description,
			Price:         input.Price,
			OriginalPrice: input.OriginalPrice,
			Category:      input.Category,
			Stock:         input.Stock,
			Image:         input.Image,
			Images:        input.Images,
			Ingredients:   input.Ingredients,
			Rating:        input.Rating,
			Reviews:       input.Reviews,
			Brand:         input.Brand,
			IsActive:      input.IsActive,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    product,
			"message": "Product updated successfully",
		})
	}
}
