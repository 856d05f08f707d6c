package repository

import (
	"context"
	"errors"

	"github.com/hanam197/cosmetic-ecommerce-web-be/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound is returned when no document matches the lookup.
	ErrNotFound = errors.New("repository: not found")
	// ErrConflict is returned by CartRepository.Save when the stored cart
	// has a newer version than the one being written.
	ErrConflict = errors.New("repository: version conflict")
	// ErrDuplicate is returned by CartRepository.Insert when a cart already
	// exists for the user.
	ErrDuplicate = errors.New("repository: duplicate key")
)

// Product sort keys, matching the public API's sort parameter.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortRating    = "rating"
	SortPopular   = "popular"
)

// ProductFilter narrows and pages a product listing. Only active products
// are ever returned by Find.
type ProductFilter struct {
	Category string
	Search   string
	Sort     string
	Page     int
	Limit    int
}

type ProductRepository interface {
	Insert(ctx context.Context, p *models.Product) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	// Find returns one page of active products plus the total match count.
	Find(ctx context.Context, f ProductFilter) ([]models.Product, int64, error)
	FindByCategory(ctx context.Context, category string, limit int) ([]models.Product, error)
	// Search returns active products ranked by text relevance over
	// name/description/brand; ties break newest-first.
	Search(ctx context.Context, query string, limit int) ([]models.Product, error)
	// Update applies the non-nil fields and returns the updated document.
	Update(ctx context.Context, id primitive.ObjectID, u ProductUpdate) (*models.Product, error)
	// SoftDelete flags the product inactive and returns the updated document.
	SoftDelete(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	// FindAll returns every product, active or not. Admin export only.
	FindAll(ctx context.Context) ([]models.Product, error)
}

// ProductUpdate is a partial product update; nil fields are left untouched.
// ID and CreatedAt are deliberately absent: they are immutable.
type ProductUpdate struct {
	Name          *string
	Description   *string
	Price         *float64
	OriginalPrice *float64
	Category      *string
	Stock         *int
	Image         *string
	Images        *[]string
	Ingredients   *[]string
	Rating        *float64
	Reviews       *int
	Brand         *string
	IsActive      *bool
}

// IsEmpty reports whether the update changes nothing.
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil &&
		u.OriginalPrice == nil && u.Category == nil && u.Stock == nil &&
		u.Image == nil && u.Images == nil && u.Ingredients == nil &&
		u.Rating == nil && u.Reviews == nil && u.Brand == nil && u.IsActive == nil
}

type CartRepository interface {
	FindByUserID(ctx context.Context, userID string) (*models.Cart, error)
	// Insert creates the cart; ErrDuplicate when the user already has one.
	Insert(ctx context.Context, cart *models.Cart) error
	// Save persists the cart if its version still matches the stored one,
	// then increments cart.Version. ErrConflict on a stale write.
	Save(ctx context.Context, cart *models.Cart) error
	FindAll(ctx context.Context) ([]models.Cart, error)
}
