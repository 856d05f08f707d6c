package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanam197/cosmetic-ecommerce-web-be/services"
)

type CreateProductInput struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         *float64 `json:"price"`
	OriginalPrice *float64 `json:"originalPrice"`
	Category      string   `json:"category"`
	Stock         *int     `json:"stock"`
	Image         string   `json:"image"`
	Images        []string `json:"images"`
	Ingredients   []string `json:"ingredients"`
	Brand         string   `json:"brand"`
}

// POST /api/products
func CreateProduct(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body: " + err.Error()})
			return
		}

		product, err := svc.Create(c.Request.Context(), services.CreateProductInput{
			Name:          input.Name,
			Description:   input.Description,
			Price:         input.Price,
			OriginalPrice: input.OriginalPrice,
			Category:      input.Category,
			Stock:         input.Stock,
			Image:         input.Image,
			Images:        input.Images,
			Ingredients:   input.Ingredients,
			Brand:         input.Brand,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"data":    product,
			"message": "Product created successfully",
		})
	}
}
