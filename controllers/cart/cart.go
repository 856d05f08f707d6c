package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanam197/cosmetic-ecommerce-web-be/services"
)

type AddItemInput struct {
	ProductID   string   `json:"productId"`
	ProductName string   `json:"productName"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
	Image       string   `json:"image"`
}

type UpdateItemInput struct {
	Quantity *int `json:"quantity"`
}

// GET /api/cart/:userId
// Returns the user's cart, creating an empty one on first access.
func GetCart(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.GetOrCreate(c.Request.Context(), c.Param("userId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    cart,
			"message": "Cart fetched successfully",
		})
	}
}

// POST /api/cart/:userId/add
func AddToCart(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body: " + err.Error()})
			return
		}

		cart, err := svc.AddItem(c.Request.Context(), c.Param("userId"), services.AddItemInput{
			ProductID:   input.ProductID,
			ProductName: input.ProductName,
			Price:       input.Price,
			Quantity:    input.Quantity,
			Image:       input.Image,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"data":    cart,
			"message": "Item added to cart",
		})
	}
}

// PATCH /api/cart/:userId/item/:itemId
func UpdateCartItem(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body: " + err.Error()})
			return
		}
		quantity := 0
		if input.Quantity != nil {
			quantity = *input.Quantity
		}

		cart, err := svc.UpdateItemQuantity(c.Request.Context(), c.Param("userId"), c.Param("itemId"), quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    cart,
			"message": "Cart item updated",
		})
	}
}

// DELETE /api/cart/:userId/item/:itemId
func RemoveCartItem(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.RemoveItem(c.Request.Context(), c.Param("userId"), c.Param("itemId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    cart,
			"message": "Item removed from cart",
		})
	}
}

// DELETE /api/cart/:userId/clear
func ClearCart(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.Clear(c.Request.Context(), c.Param("userId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    cart,
			"message": "Cart cleared",
		})
	}
}

// GET /api/cart/admin/all
func GetAllCarts(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		carts, err := svc.ListAll(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    carts,
			"total":   len(carts),
			"message": "All carts fetched",
		})
	}
}

func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch services.KindOf(err) {
	case services.KindInvalidArgument:
		status = http.StatusBadRequest
	case services.KindNotFound:
		status = http.StatusNotFound
	}
	body := gin.H{"success": false, "message": services.MessageOf(err)}
	if status == http.StatusInternalServerError {
		body["error"] = err.Error()
	}
	c.JSON(status, body)
}
