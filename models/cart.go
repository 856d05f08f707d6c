package models

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cart holds one user's shopping cart. UserID is unique per cart (one cart
// per user, enforced by a unique index on the carts collection). Version is
// the optimistic-concurrency counter checked on every save.
type Cart struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        string             `bson:"userId" json:"userId"`
	Items         []CartItem         `bson:"items" json:"items"`
	TotalPrice    float64            `bson:"totalPrice" json:"totalPrice"`
	TotalQuantity int                `bson:"totalQuantity" json:"totalQuantity"`
	Version       int64              `bson:"version" json:"-"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CartItem is a line in a cart. ProductName, Price and Image are snapshots
// taken at add time and are never reconciled against later catalog changes.
type CartItem struct {
	ID          string    `bson:"_id" json:"id"`
	ProductID   string    `bson:"productId" json:"productId"`
	ProductName string    `bson:"productName" json:"productName"`
	Price       float64   `bson:"price" json:"price"`
	Image       string    `bson:"image" json:"image"`
	Quantity    int       `bson:"quantity" json:"quantity"`
	AddedAt     time.Time `bson:"addedAt" json:"addedAt"`
}

// RecalculateTotals recomputes TotalPrice and TotalQuantity from the current
// item list. Totals are always derived from scratch, never adjusted
// incrementally, so partial updates cannot leave them stale.
// Price arithmetic goes through decimal to keep sums like 0.1×3 exact.
func (c *Cart) RecalculateTotals() {
	total := decimal.Zero
	quantity := 0
	for _, item := range c.Items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
		quantity += item.Quantity
	}
	c.TotalPrice, _ = total.Float64()
	c.TotalQuantity = quantity
}

// FindItem returns the item with the given id, or nil.
func (c *Cart) FindItem(itemID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}

// FindItemByProduct returns the item referencing the given product, or nil.
func (c *Cart) FindItemByProduct(productID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// RemoveItem deletes the item with the given id and reports whether it was
// present.
func (c *Cart) RemoveItem(itemID string) bool {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}
