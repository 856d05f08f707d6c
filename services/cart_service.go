package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hanam197/cosmetic-ecommerce-web-be/models"
	"github.com/hanam197/cosmetic-ecommerce-web-be/repository"
)

// casRetries bounds the re-read-and-retry loop around optimistic cart
// saves. Conflicts only occur when the same user mutates their cart from
// two requests at once, so contention is short-lived.
const casRetries = 3

// CartService owns the cart aggregation rules: eager validation, item
// merging, and totals recomputation before every persist.
type CartService struct {
	carts repository.CartRepository
}

func NewCartService(carts repository.CartRepository) *CartService {
	return &CartService{carts: carts}
}

// AddItemInput carries the add-to-cart payload. Price and Quantity are
// pointers so a missing field can be told apart from a zero.
type AddItemInput struct {
	ProductID   string
	ProductName string
	Price       *float64
	Quantity    *int
	Image       string
}

// GetOrCreate returns the user's cart, materializing an empty one when
// absent. The lazy creation is deliberate: the storefront calls this on
// first page load, before anything was added.
func (s *CartService) GetOrCreate(ctx context.Context, userID string) (*models.Cart, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, invalidf("user id is required")
	}

	cart, err := s.carts.FindByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, unexpected("failed to fetch cart", err)
	}

	cart = newEmptyCart(userID)
	if err := s.carts.Insert(ctx, cart); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Another request created the cart first; return the winner's.
			cart, err = s.carts.FindByUserID(ctx, userID)
			if err != nil {
				return nil, unexpected("failed to fetch cart", err)
			}
			return cart, nil
		}
		return nil, unexpected("failed to create cart", err)
	}
	return cart, nil
}

// AddItem appends the product to the cart, or bumps the quantity when the
// product is already present. The snapshot fields (name, price, image) of
// an existing item are kept as written originally.
func (s *CartService) AddItem(ctx context.Context, userID string, in AddItemInput) (*models.Cart, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, invalidf("user id is required")
	}
	if in.ProductID == "" || in.ProductName == "" || in.Price == nil || in.Quantity == nil {
		return nil, invalidf("productId, productName, price and quantity are required")
	}
	if *in.Price < 0 || math.IsNaN(*in.Price) || math.IsInf(*in.Price, 0) {
		return nil, invalidf("invalid product price")
	}
	if *in.Quantity < 1 {
		return nil, invalidf("quantity must be an integer >= 1")
	}

	for attempt := 0; attempt < casRetries; attempt++ {
		cart, created, err := s.fetchOrNew(ctx, userID)
		if err != nil {
			return nil, err
		}

		if existing := cart.FindItemByProduct(in.ProductID); existing != nil {
			existing.Quantity += *in.Quantity
		} else {
			cart.Items = append(cart.Items, models.CartItem{
				ID:          uuid.NewString(),
				ProductID:   in.ProductID,
				ProductName: in.ProductName,
				Price:       *in.Price,
				Image:       in.Image,
				Quantity:    *in.Quantity,
				AddedAt:     time.Now().UTC(),
			})
		}
		cart.RecalculateTotals()

		if created {
			err = s.carts.Insert(ctx, cart)
			if errors.Is(err, repository.ErrDuplicate) {
				continue
			}
		} else {
			err = s.carts.Save(ctx, cart)
			if errors.Is(err, repository.ErrConflict) {
				continue
			}
		}
		if err != nil {
			return nil, unexpected("failed to save cart", err)
		}
		return cart, nil
	}
	return nil, unexpected("failed to save cart", repository.ErrConflict)
}

// UpdateItemQuantity sets the item's quantity outright (not additive).
func (s *CartService) UpdateItemQuantity(ctx context.Context, userID, itemID string, quantity int) (*models.Cart, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, invalidf("user id is required")
	}
	if strings.TrimSpace(itemID) == "" {
		return nil, invalidf("item id is required")
	}
	if quantity < 1 {
		return nil, invalidf("quantity must be an integer >= 1")
	}

	return s.mutate(ctx, userID, func(cart *models.Cart) error {
		item := cart.FindItem(itemID)
		if item == nil {
			return notFoundf("cart item not found")
		}
		item.Quantity = quantity
		return nil
	})
}

// RemoveItem removes exactly one item by its identifier.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID string) (*models.Cart, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, invalidf("user id is required")
	}
	if strings.TrimSpace(itemID) == "" {
		return nil, invalidf("item id is required")
	}

	return s.mutate(ctx, userID, func(cart *models.Cart) error {
		if !cart.RemoveItem(itemID) {
			return notFoundf("cart item not found")
		}
		return nil
	})
}

// Clear empties the cart. Unlike GetOrCreate it does not materialize one.
func (s *CartService) Clear(ctx context.Context, userID string) (*models.Cart, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, invalidf("user id is required")
	}

	return s.mutate(ctx, userID, func(cart *models.Cart) error {
		cart.Items = []models.CartItem{}
		return nil
	})
}

// ListAll returns every cart without pagination. Admin-only; fine at the
// current shop size, revisit before the cart count grows.
func (s *CartService) ListAll(ctx context.Context) ([]models.Cart, error) {
	carts, err := s.carts.FindAll(ctx)
	if err != nil {
		return nil, unexpected("failed to fetch carts", err)
	}
	return carts, nil
}

// mutate runs fn against a fresh copy of the cart, recomputes the totals
// and saves, retrying the whole read-modify-write on version conflicts.
func (s *CartService) mutate(ctx context.Context, userID string, fn func(*models.Cart) error) (*models.Cart, error) {
	for attempt := 0; attempt < casRetries; attempt++ {
		cart, err := s.carts.FindByUserID(ctx, userID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundf("cart not found")
		}
		if err != nil {
			return nil, unexpected("failed to fetch cart", err)
		}

		if err := fn(cart); err != nil {
			return nil, err
		}
		cart.RecalculateTotals()

		err = s.carts.Save(ctx, cart)
		if errors.Is(err, repository.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, unexpected("failed to save cart", err)
		}
		return cart, nil
	}
	return nil, unexpected("failed to save cart", repository.ErrConflict)
}

func (s *CartService) fetchOrNew(ctx context.Context, userID string) (cart *models.Cart, created bool, err error) {
	cart, err = s.carts.FindByUserID(ctx, userID)
	if err == nil {
		return cart, false, nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return newEmptyCart(userID), true, nil
	}
	return nil, false, unexpected("failed to fetch cart", err)
}

func newEmptyCart(userID string) *models.Cart {
	now := time.Now().UTC()
	return &models.Cart{
		UserID:    userID,
		Items:     []models.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
