package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product categories
const (
	CategorySkincare  = "skincare"
	CategoryMakeup    = "makeup"
	CategoryHaircare  = "haircare"
	CategoryFragrance = "fragrance"
	CategoryBodycare  = "bodycare"
	CategoryOther     = "other"
)

var Categories = []string{
	CategorySkincare,
	CategoryMakeup,
	CategoryHaircare,
	CategoryFragrance,
	CategoryBodycare,
	CategoryOther,
}

// IsValidCategory reports whether c is one of the known product categories.
func IsValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	Price         float64            `bson:"price" json:"price"`
	OriginalPrice float64            `bson:"originalPrice" json:"originalPrice"`
	Category      string             `bson:"category" json:"category"`
	Stock         int                `bson:"stock" json:"stock"`
	Image         string             `bson:"image" json:"image"`
	Images        []string           `bson:"images" json:"images"`
	Ingredients   []string           `bson:"ingredients" json:"ingredients"`
	Rating        float64            `bson:"rating" json:"rating"`
	Reviews       int                `bson:"reviews" json:"reviews"`
	Brand         string             `bson:"brand" json:"brand"`
	IsActive      bool               `bson:"isActive" json:"isActive"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Validate checks the field invariants of a fully populated product.
func (p *Product) Validate() error {
	name := strings.TrimSpace(p.Name)
	if len(name) < 3 || len(name) > 100 {
		return fmt.Errorf("product name must be between 3 and 100 characters")
	}
	if strings.TrimSpace(p.Description) == "" {
		return fmt.Errorf("product description is required")
	}
	if p.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if p.OriginalPrice < 0 {
		return fmt.Errorf("original price must not be negative")
	}
	if !IsValidCategory(p.Category) {
		return fmt.Errorf("invalid category %q, must be one of: %s", p.Category, strings.Join(Categories, ", "))
	}
	if p.Stock < 0 {
		return fmt.Errorf("stock must not be negative")
	}
	return nil
}

// ClampRating forces the rating into the [0,5] range.
func (p *Product) ClampRating() {
	if p.Rating < 0 {
		p.Rating = 0
	}
	if p.Rating > 5 {
		p.Rating = 5
	}
}
